package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

// OrderLine is one cake on an order. ProductName and UnitPrice are snapshots
// taken at order time so catalog edits never rewrite past orders; ProductID
// goes nil if the cake is later removed from the catalog.
type OrderLine struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"column:order_id;not null;index:order_lines_order_idx"`
	ProductID   *int64          `gorm:"column:product_id"`
	ProductName string          `gorm:"column:product_name;not null;default:''"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:numeric(10,2);not null"`
	Unit        enums.Unit      `gorm:"column:unit;type:text;not null"`
	HasRice     bool            `gorm:"column:has_rice;not null;default:false"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null;default:0"`
	Position    int             `gorm:"column:position;not null;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
