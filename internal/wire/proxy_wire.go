package wire

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireProxy forwards /api/* to the backend process so any direct
// browser calls keep working during development. Deployment plumbing,
// not part of the session core.
func wireProxy(r chi.Router, config utils.BackendConfig, logger *zap.Logger) error {
	target, err := url.Parse(config.URL)
	if err != nil {
		return err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("Proxy request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		w.WriteHeader(http.StatusBadGateway)
	}

	r.Handle("/api/*", proxy)
	return nil
}
