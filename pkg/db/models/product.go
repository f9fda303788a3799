package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a rice cake on the catalog. Each unit price is optional; a nil
// price means the cake is not sold in that unit.
type Product struct {
	ID            int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string           `gorm:"column:name;not null;uniqueIndex:products_name_key"`
	PricePerKg    *decimal.Decimal `gorm:"column:price_per_kg;type:numeric(12,2)"`
	PricePerDoe   *decimal.Decimal `gorm:"column:price_per_doe;type:numeric(12,2)"`
	PricePerMal   *decimal.Decimal `gorm:"column:price_per_mal;type:numeric(12,2)"`
	PricePerPiece *decimal.Decimal `gorm:"column:price_per_piece;type:numeric(12,2)"`
	PricePerPack  *decimal.Decimal `gorm:"column:price_per_pack;type:numeric(12,2)"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
