package products

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db"
	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/hangul"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

// Service exposes catalog operations for rice cakes.
type Service interface {
	Create(ctx context.Context, input ProductInput) (*ProductView, error)
	Get(ctx context.Context, id int64) (*ProductView, error)
	Update(ctx context.Context, id int64, input ProductInput) (*ProductView, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params pagination.Params, query string) (*ProductList, error)
	ListByInitial(ctx context.Context, initial rune) ([]ProductView, error)
}

type service struct {
	repo Repository
}

// NewService builds a product service backed by the given repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*ProductView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	product := applyInput(&models.Product{}, input)
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "products_name_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	view := View(*created)
	return &view, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductView, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	view := View(*product)
	return &view, nil
}

func (s *service) Update(ctx context.Context, id int64, input ProductInput) (*ProductView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInput(product, input)
	if err := s.repo.Update(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "products_name_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	view := View(*product)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.findProduct(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) List(ctx context.Context, params pagination.Params, query string) (*ProductList, error) {
	rows, next, err := s.repo.List(ctx, params, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, View(row))
	}
	return &ProductList{Products: views, NextCursor: next}, nil
}

// ListByInitial returns the cakes whose name starts with the given Korean
// initial consonant. The catalog is small, so the filter runs over the full
// list rather than in SQL.
func (s *service) ListByInitial(ctx context.Context, initial rune) ([]ProductView, error) {
	if !hangul.IsInitial(initial) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid initial consonant")
	}
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		if hangul.MatchesInitial(row.Name, initial) {
			views = append(views, View(row))
		}
	}
	return views, nil
}

func (s *service) findProduct(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func validateInput(input ProductInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	for _, price := range []*decimal.Decimal{
		input.PricePerKg, input.PricePerDoe, input.PricePerMal,
		input.PricePerPiece, input.PricePerPack,
	} {
		if price != nil && price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
		}
	}
	return nil
}

func applyInput(product *models.Product, input ProductInput) *models.Product {
	product.Name = input.Name
	product.PricePerKg = input.PricePerKg
	product.PricePerDoe = input.PricePerDoe
	product.PricePerMal = input.PricePerMal
	product.PricePerPiece = input.PricePerPiece
	product.PricePerPack = input.PricePerPack
	return product
}
