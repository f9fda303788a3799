package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

func price(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestAvailableUnits(t *testing.T) {
	t.Parallel()

	t.Run("canonical order regardless of field order", func(t *testing.T) {
		p := Product{
			Name:          "송편",
			PricePerPack:  price("12000"),
			PricePerKg:    price("25000"),
			PricePerPiece: price("500"),
		}
		assert.Equal(t, []enums.Unit{enums.UnitKg, enums.UnitPiece, enums.UnitPack}, AvailableUnits(p))
	})

	t.Run("zero and missing prices excluded", func(t *testing.T) {
		p := Product{
			Name:        "백설기",
			PricePerKg:  price("0"),
			PricePerDoe: price("18000"),
		}
		assert.Equal(t, []enums.Unit{enums.UnitDoe}, AvailableUnits(p))
	})

	t.Run("no prices at all", func(t *testing.T) {
		assert.Empty(t, AvailableUnits(Product{Name: "미정"}))
	})
}

func TestPriceFor(t *testing.T) {
	t.Parallel()

	p := Product{
		Name:       "인절미",
		PricePerKg: price("22000"),
	}

	assert.True(t, PriceFor(p, enums.UnitKg).Equal(decimal.RequireFromString("22000")))
	assert.True(t, PriceFor(p, enums.UnitMal).IsZero(), "undefined unit resolves to zero, never an error")
	assert.True(t, PriceFor(Product{}, enums.UnitPack).IsZero())
}
