package wire

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWallet(r chi.Router, walletHandler *adaptor.WalletHandler, gate func(http.Handler) http.Handler) {
	r.Route("/wallets", func(r chi.Router) {
		r.Use(gate)

		r.Get("/", walletHandler.List)
		r.Post("/", walletHandler.Create)
		r.Post("/{id}/edit", walletHandler.Update)
		r.Get("/{id}/delete", walletHandler.ConfirmDelete)
		r.Post("/{id}/delete", walletHandler.Delete)
	})
}
