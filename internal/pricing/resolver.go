// Package pricing resolves per-unit prices for rice cakes. A product carries
// up to five optional unit prices; only units with a defined positive price
// are offered to callers.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

// Product is the price sheet of a single rice cake. A nil price means the
// product is not sold in that unit.
type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	PricePerKg    *decimal.Decimal `json:"pricePerKg,omitempty"`
	PricePerDoe   *decimal.Decimal `json:"pricePerDoe,omitempty"`
	PricePerMal   *decimal.Decimal `json:"pricePerMal,omitempty"`
	PricePerPiece *decimal.Decimal `json:"pricePerPiece,omitempty"`
	PricePerPack  *decimal.Decimal `json:"pricePerPack,omitempty"`
}

func (p Product) priceField(unit enums.Unit) *decimal.Decimal {
	switch unit {
	case enums.UnitKg:
		return p.PricePerKg
	case enums.UnitDoe:
		return p.PricePerDoe
	case enums.UnitMal:
		return p.PricePerMal
	case enums.UnitPiece:
		return p.PricePerPiece
	case enums.UnitPack:
		return p.PricePerPack
	}
	return nil
}

// AvailableUnits returns the units the product can be ordered in, in the
// canonical order (kg, 되, 말, 개, 팩). A unit qualifies only when it has a
// defined positive price.
func AvailableUnits(p Product) []enums.Unit {
	units := make([]enums.Unit, 0, 5)
	for _, unit := range enums.CanonicalUnits() {
		if price := p.priceField(unit); price != nil && price.IsPositive() {
			units = append(units, unit)
		}
	}
	return units
}

// PriceFor returns the stored price for the unit, or zero when the product has
// no price defined for it. It never fails; callers gate user-facing unit
// choices on AvailableUnits instead.
func PriceFor(p Product, unit enums.Unit) decimal.Decimal {
	if price := p.priceField(unit); price != nil {
		return *price
	}
	return decimal.Zero
}
