package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

// Repository defines persistence operations for the rice cake catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params pagination.Params, query string) ([]models.Product, string, error)
	ListAll(ctx context.Context) ([]models.Product, error)
}
