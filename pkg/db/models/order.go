package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a pickup order placed at the kiosk or over the counter. PickupAt
// carries the pickup date; when AllDay is set the time-of-day portion is not
// meaningful.
type Order struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"column:customer_id;not null;index:orders_customer_idx"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID"`
	PickupAt   time.Time       `gorm:"column:pickup_at;not null;index:orders_pickup_idx"`
	AllDay     bool            `gorm:"column:all_day;not null;default:false"`
	IsPaid     bool            `gorm:"column:is_paid;not null;default:false"`
	IsPickedUp bool            `gorm:"column:is_picked_up;not null;default:false"`
	Memo       *string         `gorm:"column:memo"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null;default:0"`
	Lines      []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
