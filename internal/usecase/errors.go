package usecase

import (
	"errors"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
)

// surface picks the user-facing message for a failed backend call: the
// server-supplied error envelope verbatim when present, otherwise the
// per-operation fallback.
func surface(err error, fallback string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}
