package products

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjipark/tteokbang-backend/internal/pricing"
	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

// ProductInput carries the writable fields of a catalog entry. Each price is
// optional; omitting one delists the cake from that unit.
type ProductInput struct {
	Name          string           `json:"name" validate:"required,max=100"`
	PricePerKg    *decimal.Decimal `json:"pricePerKg,omitempty"`
	PricePerDoe   *decimal.Decimal `json:"pricePerDoe,omitempty"`
	PricePerMal   *decimal.Decimal `json:"pricePerMal,omitempty"`
	PricePerPiece *decimal.Decimal `json:"pricePerPiece,omitempty"`
	PricePerPack  *decimal.Decimal `json:"pricePerPack,omitempty"`
}

// ProductView is the catalog entry returned to clients, with the sellable
// units precomputed for the kiosk unit picker.
type ProductView struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	PricePerKg     *decimal.Decimal `json:"pricePerKg,omitempty"`
	PricePerDoe    *decimal.Decimal `json:"pricePerDoe,omitempty"`
	PricePerMal    *decimal.Decimal `json:"pricePerMal,omitempty"`
	PricePerPiece  *decimal.Decimal `json:"pricePerPiece,omitempty"`
	PricePerPack   *decimal.Decimal `json:"pricePerPack,omitempty"`
	AvailableUnits []enums.Unit     `json:"availableUnits"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ProductList wraps a catalog page plus the next page cursor.
type ProductList struct {
	Products   []ProductView `json:"products"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// PriceSheet maps a stored product onto the resolver's price sheet shape.
func PriceSheet(p models.Product) pricing.Product {
	return pricing.Product{
		ID:            p.ID,
		Name:          p.Name,
		PricePerKg:    p.PricePerKg,
		PricePerDoe:   p.PricePerDoe,
		PricePerMal:   p.PricePerMal,
		PricePerPiece: p.PricePerPiece,
		PricePerPack:  p.PricePerPack,
	}
}

// View builds the client representation of a stored product.
func View(p models.Product) ProductView {
	return ProductView{
		ID:             p.ID,
		Name:           p.Name,
		PricePerKg:     p.PricePerKg,
		PricePerDoe:    p.PricePerDoe,
		PricePerMal:    p.PricePerMal,
		PricePerPiece:  p.PricePerPiece,
		PricePerPack:   p.PricePerPack,
		AvailableUnits: pricing.AvailableUnits(PriceSheet(p)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
