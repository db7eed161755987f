package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/backend"
	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
	"github.com/cnedd11/Crypto-Bank-App/internal/dto/request"
	"github.com/cnedd11/Crypto-Bank-App/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	List(ctx context.Context, cookies []*http.Cookie) ([]entity.Customer, error)
	Get(ctx context.Context, id int64, cookies []*http.Cookie) (*entity.Customer, error)
	Create(ctx context.Context, form *request.CustomerForm, cookies []*http.Cookie) (*entity.Customer, error)
	Delete(ctx context.Context, id int64, cookies []*http.Cookie) error
}

type customerService struct {
	client *backend.Client
	log    *zap.Logger
}

func NewCustomerService(client *backend.Client, log *zap.Logger) CustomerService {
	return &customerService{
		client: client,
		log:    log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) List(ctx context.Context, cookies []*http.Cookie) ([]entity.Customer, error) {
	customers, err := s.client.ListCustomers(ctx, cookies)
	if err != nil {
		s.log.Error("Failed to list customers", zap.Error(err))
		return nil, surface(err, "Failed to load customers")
	}
	return customers, nil
}

// Get resolves one customer out of the listing. The backend has no
// single-customer endpoint, so the confirm page reuses the list call.
func (s *customerService) Get(ctx context.Context, id int64, cookies []*http.Cookie) (*entity.Customer, error) {
	customers, err := s.List(ctx, cookies)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}

	return nil, errors.New("Customer not found")
}

func (s *customerService) Create(ctx context.Context, form *request.CustomerForm, cookies []*http.Cookie) (*entity.Customer, error) {
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		s.log.Warn("Customer validation failed", zap.Any("errors", errs))
		return nil, errors.New(utils.FormatValidationErrors(errs))
	}

	fields := backend.CustomerFields{
		Name:  form.Name,
		Email: form.Email,
	}
	if form.Phone != "" {
		fields.Phone = &form.Phone
	}

	created, err := s.client.CreateCustomer(ctx, fields, cookies)
	if err != nil {
		s.log.Warn("Failed to create customer", zap.String("email", form.Email), zap.Error(err))
		return nil, surface(err, "Add customer failed")
	}

	s.log.Info("Customer created",
		zap.Int64("customer_id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}

func (s *customerService) Delete(ctx context.Context, id int64, cookies []*http.Cookie) error {
	if err := s.client.DeleteCustomer(ctx, id, cookies); err != nil {
		s.log.Warn("Failed to delete customer", zap.Int64("customer_id", id), zap.Error(err))
		return surface(err, "Delete failed")
	}

	s.log.Info("Customer deleted", zap.Int64("customer_id", id))
	return nil
}
