package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a customer repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repository) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Customer{}).Error
}

func (r *repository) List(ctx context.Context, params pagination.Params, query string) ([]models.Customer, string, error) {
	afterID, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}
	limit := pagination.NormalizeLimit(params.Limit)

	q := r.db.WithContext(ctx).Model(&models.Customer{})
	if afterID > 0 {
		q = q.Where("id > ?", afterID)
	}
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", pattern, pattern)
	}

	var customers []models.Customer
	err = q.Order("id ASC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&customers).Error
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(customers) > limit {
		customers = customers[:limit]
		next = pagination.EncodeCursor(customers[limit-1].ID)
	}
	return customers, next, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
