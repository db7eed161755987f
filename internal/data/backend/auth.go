package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// Me probes GET /api/me. Success yields the session; every failure mode
// (network error, 401, malformed payload) yields a plain error so the
// caller can treat all of them as "no session".
func (c *Client) Me(ctx context.Context, cookies []*http.Cookie) (*entity.Session, error) {
	var payload struct {
		User *entity.Session `json:"user"`
	}

	if _, err := c.do(ctx, http.MethodGet, "/api/me", nil, cookies, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil || payload.User.Email == "" {
		return nil, fmt.Errorf("me: response missing user")
	}

	return payload.User, nil
}

// Login posts credentials and returns the Set-Cookie headers that carry
// the newly established backend session.
func (c *Client) Login(ctx context.Context, email, password string, cookies []*http.Cookie) ([]*http.Cookie, error) {
	return c.do(ctx, http.MethodPost, "/api/login", credentials{Email: email, Password: password}, cookies, nil)
}

// Register creates an account. The backend does not establish a session
// here; callers follow up with Login.
func (c *Client) Register(ctx context.Context, email, password string, role entity.Role, cookies []*http.Cookie) error {
	_, err := c.do(ctx, http.MethodPost, "/api/register", registration{Email: email, Password: password, Role: role}, cookies, nil)
	return err
}

func (c *Client) Logout(ctx context.Context, cookies []*http.Cookie) error {
	_, err := c.do(ctx, http.MethodPost, "/api/logout", struct{}{}, cookies, nil)
	return err
}
