package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/internal/session"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

// AuthService is the single writer of session state. Every operation
// that can change the backend session also drops the probe cache entry
// for the cookies it was called with; nothing else in the app is
// allowed to invalidate that cache.
type AuthService interface {
	Login(ctx context.Context, form *request.LoginForm, cookies []*http.Cookie) ([]*http.Cookie, error)
	Register(ctx context.Context, form *request.RegisterForm, cookies []*http.Cookie) ([]*http.Cookie, error)
	Logout(ctx context.Context, cookies []*http.Cookie) error
}

type authService struct {
	client *backend.Client
	store  *session.Store
	log    *zap.Logger
}

func NewAuthService(client *backend.Client, store *session.Store, log *zap.Logger) AuthService {
	return &authService{
		client: client,
		store:  store,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, form *request.LoginForm, cookies []*http.Cookie) ([]*http.Cookie, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, errors.New(utils.FormatValidationErrors(errs))
	}

	// 2. Post credentials; the backend establishes the cookie session
	setCookies, err := s.client.Login(ctx, form.Email, form.Password, cookies)
	if err != nil {
		s.log.Warn("Login failed", zap.String("email", form.Email), zap.Error(err))
		return nil, surface(err, "Login failed")
	}

	// 3. The old cookie no longer reflects reality
	s.store.Invalidate(cookies)

	s.log.Info("User logged in", zap.String("email", form.Email))
	return setCookies, nil
}

func (s *authService) Register(ctx context.Context, form *request.RegisterForm, cookies []*http.Cookie) ([]*http.Cookie, error) {
	// 1. Validate input. The password complexity rule runs here; a
	// violation blocks the submission before any network call.
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, errors.New(utils.FormatValidationErrors(errs))
	}

	// 2. Create the account. Registration does not establish a session.
	if err := s.client.Register(ctx, form.Email, form.Password, entity.Role(form.Role), cookies); err != nil {
		s.log.Warn("Registration failed", zap.String("email", form.Email), zap.Error(err))
		return nil, surface(err, "Registration failed")
	}

	// 3. Immediately log in with the same credentials
	setCookies, err := s.client.Login(ctx, form.Email, form.Password, cookies)
	if err != nil {
		s.log.Warn("Login after registration failed", zap.String("email", form.Email), zap.Error(err))
		return nil, surface(err, "Registration failed")
	}

	s.store.Invalidate(cookies)

	s.log.Info("User registered",
		zap.String("email", form.Email),
		zap.String("role", form.Role))
	return setCookies, nil
}

// Logout is best effort: the cache entry is dropped and the caller
// clears the browser cookie no matter what the backend said.
func (s *authService) Logout(ctx context.Context, cookies []*http.Cookie) error {
	err := s.client.Logout(ctx, cookies)
	if err != nil {
		s.log.Warn("Logout request failed, clearing local session anyway", zap.Error(err))
	}

	s.store.Invalidate(cookies)

	s.log.Info("User logged out")
	return err
}
