// Package backend is the data layer of the web client: a thin REST
// client for the CryptoBank API. It fills the slot a SQL repository
// would in a regular service; every call carries the browser's cookies
// so the backend, not this process, owns authentication.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

// APIError is a rejected backend call. Message is the server-supplied
// `{"error": "..."}` envelope value, empty when the envelope is absent
// or unreadable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(config utils.BackendConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.URL, "/"),
		http: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("component", "backend")),
	}
}

// do performs one backend call. Cookies from the browser request are
// attached verbatim; Set-Cookie headers from the backend response are
// returned so the caller can relay them back to the browser. A non-2xx
// status decodes the conventional error envelope into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, cookies []*http.Cookie, out any) ([]*http.Cookie, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	setCookies := resp.Cookies()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}

		// Error envelope is best effort: `{"error": string}` or nothing
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Error
		}

		c.log.Debug("Backend rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", apiErr.Message))
		return setCookies, apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Warn("Malformed backend payload",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err))
			return setCookies, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}

	return setCookies, nil
}
