package wire

import (
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler, gate func(http.Handler) http.Handler) {
	r.Route("/customers", func(r chi.Router) {
		r.Use(gate)

		r.Get("/", customerHandler.List)
		r.Post("/", customerHandler.Create)
		r.Get("/{id}/delete", customerHandler.ConfirmDelete)
		r.Post("/{id}/delete", customerHandler.Delete)
	})
}
