package customers

import (
	"time"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
)

// CustomerInput carries the writable fields of a customer record.
type CustomerInput struct {
	Name  string  `json:"name" validate:"required,max=50"`
	Phone string  `json:"phone" validate:"max=20"`
	Memo  *string `json:"memo,omitempty" validate:"omitempty,max=500"`
}

// CustomerView is the customer record returned to clients.
type CustomerView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Memo      *string   `json:"memo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerList wraps a customer page plus the next page cursor.
type CustomerList struct {
	Customers  []CustomerView `json:"customers"`
	NextCursor string         `json:"nextCursor,omitempty"`
}

// View builds the client representation of a stored customer.
func View(c models.Customer) CustomerView {
	return CustomerView{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Memo:      c.Memo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
