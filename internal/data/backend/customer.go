package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
)

type CustomerFields struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

func (c *Client) ListCustomers(ctx context.Context, cookies []*http.Cookie) ([]entity.Customer, error) {
	var customers []entity.Customer
	if _, err := c.do(ctx, http.MethodGet, "/api/customers", nil, cookies, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, fields CustomerFields, cookies []*http.Cookie) (*entity.Customer, error) {
	var created entity.Customer
	if _, err := c.do(ctx, http.MethodPost, "/api/customers", fields, cookies, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64, cookies []*http.Cookie) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/customers/%d", id), nil, cookies, nil)
	return err
}
