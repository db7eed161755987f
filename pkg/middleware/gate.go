package middleware

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/session"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

// Gate protects a route subtree behind the session probe. A request
// arrives in the unknown state and nothing is written until the probe
// resolves it: authorized requests continue with the session in
// context, everything else gets the login prompt and never reaches the
// guarded handler.
func Gate(store *session.Store, prompt http.HandlerFunc, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, sess := store.Resolve(r.Context(), r.Cookies())

			if state != session.StateAuthorized {
				logger.Debug("Gate blocked request",
					zap.String("path", r.URL.Path),
					zap.String("state", state.String()))
				prompt(w, r)
				return
			}

			ctx := utils.SetSessionContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
