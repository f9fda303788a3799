package orders

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
)

// Repository defines persistence operations for orders and their lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	ReplaceLines(ctx context.Context, orderID int64, lines []models.OrderLine) error
	Save(ctx context.Context, order *models.Order) error
	UpdateFields(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
	ListByPickupRange(ctx context.Context, from, to time.Time) ([]models.Order, error)
	ListHeadersByPickupRange(ctx context.Context, from, to time.Time) ([]models.Order, error)
}
