package wire

import (
	"github.com/cnedd11/Crypto-Bank-App/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)

	// Logout stays public on purpose: clearing the local session must
	// work even when the backend no longer recognizes the cookie
	r.Post("/logout", authHandler.Logout)
}
