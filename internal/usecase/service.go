package usecase

import (
	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
	"github.com/cnedd11/Crypto-Bank-App/internal/session"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Customer CustomerService
	Wallet   WalletService
}

func NewService(client *backend.Client, store *session.Store, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(client, store, log),
		Customer: NewCustomerService(client, log),
		Wallet:   NewWalletService(client, log),
	}
}
