package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

// Repository defines persistence operations for shop customers.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params pagination.Params, query string) ([]models.Customer, string, error)
	ListAll(ctx context.Context) ([]models.Customer, error)
}
