package adaptor

import (
	"github.com/cnedd11/Crypto-Bank-App/internal/session"
	"github.com/cnedd11/Crypto-Bank-App/internal/usecase"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Home     *HomeHandler
	Auth     *AuthHandler
	Customer *CustomerHandler
	Wallet   *WalletHandler
}

func NewHandler(service *usecase.Service, store *session.Store, renderer *Renderer, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Home:     NewHomeHandler(store, renderer, log),
		Auth:     NewAuthHandler(service.Auth, store, renderer, config.Session, log),
		Customer: NewCustomerHandler(service.Customer, renderer, log),
		Wallet:   NewWalletHandler(service.Wallet, service.Customer, renderer, log),
	}
}
