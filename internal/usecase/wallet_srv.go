package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

type WalletService interface {
	List(ctx context.Context, customerID int64, cookies []*http.Cookie) ([]entity.Wallet, error)
	Find(ctx context.Context, customerID, walletID int64, cookies []*http.Cookie) (*entity.Wallet, error)
	Create(ctx context.Context, form *request.WalletForm, cookies []*http.Cookie) (*entity.Wallet, error)
	Update(ctx context.Context, id int64, form *request.WalletForm, cookies []*http.Cookie) (*entity.Wallet, error)
	Delete(ctx context.Context, id int64, cookies []*http.Cookie) error
}

type walletService struct {
	client *backend.Client
	log    *zap.Logger
}

func NewWalletService(client *backend.Client, log *zap.Logger) WalletService {
	return &walletService{
		client: client,
		log:    log.With(zap.String("service", "wallet")),
	}
}

func (s *walletService) List(ctx context.Context, customerID int64, cookies []*http.Cookie) ([]entity.Wallet, error) {
	wallets, err := s.client.ListWallets(ctx, customerID, cookies)
	if err != nil {
		s.log.Error("Failed to list wallets",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return nil, surface(err, "Failed to load wallets")
	}
	return wallets, nil
}

func (s *walletService) Find(ctx context.Context, customerID, walletID int64, cookies []*http.Cookie) (*entity.Wallet, error) {
	wallets, err := s.List(ctx, customerID, cookies)
	if err != nil {
		return nil, err
	}

	for i := range wallets {
		if wallets[i].ID == walletID {
			return &wallets[i], nil
		}
	}

	return nil, errors.New("Wallet not found")
}

func (s *walletService) Create(ctx context.Context, form *request.WalletForm, cookies []*http.Cookie) (*entity.Wallet, error) {
	fields, err := s.parseForm(form)
	if err != nil {
		return nil, err
	}
	fields.CustomerID = form.CustomerID

	created, err := s.client.CreateWallet(ctx, *fields, cookies)
	if err != nil {
		s.log.Warn("Failed to create wallet",
			zap.String("wallet_name", form.WalletName),
			zap.Int64("customer_id", form.CustomerID),
			zap.Error(err))
		return nil, surface(err, "Operation failed")
	}

	s.log.Info("Wallet created",
		zap.Int64("wallet_id", created.ID),
		zap.Int64("customer_id", created.CustomerID))
	return created, nil
}

func (s *walletService) Update(ctx context.Context, id int64, form *request.WalletForm, cookies []*http.Cookie) (*entity.Wallet, error) {
	fields, err := s.parseForm(form)
	if err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateWallet(ctx, id, *fields, cookies)
	if err != nil {
		s.log.Warn("Failed to update wallet", zap.Int64("wallet_id", id), zap.Error(err))
		return nil, surface(err, "Operation failed")
	}

	s.log.Info("Wallet updated", zap.Int64("wallet_id", id))
	return updated, nil
}

func (s *walletService) Delete(ctx context.Context, id int64, cookies []*http.Cookie) error {
	if err := s.client.DeleteWallet(ctx, id, cookies); err != nil {
		s.log.Warn("Failed to delete wallet", zap.Int64("wallet_id", id), zap.Error(err))
		return surface(err, "Delete failed")
	}

	s.log.Info("Wallet deleted", zap.Int64("wallet_id", id))
	return nil
}

// parseForm validates the raw form and converts the balance text to a
// float64, the same way the form always submitted it. Display rounds to
// 4 decimals; the stored value keeps float precision as-is.
func (s *walletService) parseForm(form *request.WalletForm) (*backend.WalletFields, error) {
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		s.log.Warn("Wallet validation failed", zap.Any("errors", errs))
		return nil, errors.New(utils.FormatValidationErrors(errs))
	}

	balance, err := strconv.ParseFloat(form.Balance, 64)
	if err != nil {
		s.log.Warn("Invalid balance value", zap.String("balance", form.Balance))
		return nil, errors.New("Balance: Must be a number")
	}

	return &backend.WalletFields{
		WalletName: form.WalletName,
		Balance:    balance,
	}, nil
}
