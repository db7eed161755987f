package middleware

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"github.com/google/uuid"
)

// RequestID tags every request with a UUID so log lines from one
// request can be correlated across layers.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()

			ctx := utils.SetRequestIDContext(r.Context(), id)
			w.Header().Set("X-Request-ID", id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
