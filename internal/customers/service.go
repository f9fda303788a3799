package customers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/hangul"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

// Service exposes customer book operations.
type Service interface {
	Create(ctx context.Context, input CustomerInput) (*CustomerView, error)
	Get(ctx context.Context, id int64) (*CustomerView, error)
	Update(ctx context.Context, id int64, input CustomerInput) (*CustomerView, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params pagination.Params, query string) (*CustomerList, error)
	ListByInitial(ctx context.Context, initial rune) ([]CustomerView, error)
}

type service struct {
	repo Repository
}

// NewService builds a customer service backed by the given repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CustomerInput) (*CustomerView, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}
	customer := &models.Customer{
		Name:  input.Name,
		Phone: input.Phone,
		Memo:  input.Memo,
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	view := View(*created)
	return &view, nil
}

func (s *service) Get(ctx context.Context, id int64) (*CustomerView, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	view := View(*customer)
	return &view, nil
}

func (s *service) Update(ctx context.Context, id int64, input CustomerInput) (*CustomerView, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Memo = input.Memo
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	view := View(*customer)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.findCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}

func (s *service) List(ctx context.Context, params pagination.Params, query string) (*CustomerList, error) {
	rows, next, err := s.repo.List(ctx, params, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	views := make([]CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, View(row))
	}
	return &CustomerList{Customers: views, NextCursor: next}, nil
}

// ListByInitial returns the customers whose name starts with the given Korean
// initial consonant. The kiosk uses this for its first intake step.
func (s *service) ListByInitial(ctx context.Context, initial rune) ([]CustomerView, error) {
	if !hangul.IsInitial(initial) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid initial consonant")
	}
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	views := make([]CustomerView, 0, len(rows))
	for _, row := range rows {
		if hangul.MatchesInitial(row.Name, initial) {
			views = append(views, View(row))
		}
	}
	return views, nil
}

func (s *service) findCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}
