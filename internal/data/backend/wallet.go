package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
)

type WalletFields struct {
	WalletName string  `json:"wallet_name"`
	Balance    float64 `json:"balance"`
	CustomerID int64   `json:"customer_id,omitempty"`
}

func (c *Client) ListWallets(ctx context.Context, customerID int64, cookies []*http.Cookie) ([]entity.Wallet, error) {
	var wallets []entity.Wallet
	path := fmt.Sprintf("/api/customers/%d/wallets", customerID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, cookies, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *Client) CreateWallet(ctx context.Context, fields WalletFields, cookies []*http.Cookie) (*entity.Wallet, error) {
	var created entity.Wallet
	if _, err := c.do(ctx, http.MethodPost, "/api/wallets", fields, cookies, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateWallet(ctx context.Context, id int64, fields WalletFields, cookies []*http.Cookie) (*entity.Wallet, error) {
	var updated entity.Wallet
	path := fmt.Sprintf("/api/wallets/%d", id)
	body := WalletFields{WalletName: fields.WalletName, Balance: fields.Balance}
	if _, err := c.do(ctx, http.MethodPut, path, body, cookies, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteWallet(ctx context.Context, id int64, cookies []*http.Cookie) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/wallets/%d", id), nil, cookies, nil)
	return err
}
