package wire

import (
	"github.com/cnedd11/Crypto-Bank-App/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHome(r chi.Router, homeHandler *adaptor.HomeHandler) {
	r.Get("/", homeHandler.Home)
}
