// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/adaptor"
	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
	"github.com/cnedd11/Crypto-Bank-App/internal/session"
	"github.com/cnedd11/Crypto-Bank-App/internal/usecase"
	"github.com/cnedd11/Crypto-Bank-App/pkg/middleware"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes every dependency and assembles the router
func Wiring(client *backend.Client, store *session.Store, config *utils.Config, logger *zap.Logger) (*App, error) {
	renderer, err := adaptor.NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(client, store, logger)
	handler := adaptor.NewHandler(service, store, renderer, config, logger)

	router, err := setupRouter(handler, store, config, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	store *session.Store,
	config *utils.Config,
	logger *zap.Logger,
) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// The gate guards everything under /customers and /wallets
	gate := middleware.Gate(store, handler.Home.Unauthorized, logger)

	wireHome(r, handler.Home)
	wireAuth(r, handler.Auth)
	wireCustomer(r, handler.Customer, gate)
	wireWallet(r, handler.Wallet, gate)

	// Development-time passthrough so /api/* calls against this server
	// reach the backend directly
	if err := wireProxy(r, config.Backend, logger); err != nil {
		return nil, err
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r, nil
}
