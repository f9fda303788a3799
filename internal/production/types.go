// Package production holds the production-planning core: the aggregator that
// folds a day's order lines into a deduplicated worklist, and the sequencer
// that assigns per-pickup-day order numbers. Both are pure transformations
// over immutable snapshots; they perform no I/O and are safe to call
// concurrently on independent inputs.
package production

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

// Line is the canonical order-line snapshot the core consumes. The storage
// adapter normalizes whatever shape the backing store uses into this one; the
// core never branches on alternative field spellings.
type Line struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        enums.Unit      `json:"unit"`
	HasRice     bool            `json:"hasRice"`
}

// Order is the canonical order snapshot. CreatedAt is the zero time when the
// creation timestamp is unknown.
type Order struct {
	ID           int64           `json:"orderId"`
	CustomerID   int64           `json:"customerId"`
	CustomerName string          `json:"customerName"`
	PickupAt     time.Time       `json:"pickupDate"`
	AllDay       bool            `json:"isAllDay"`
	CreatedAt    time.Time       `json:"createdAt,omitzero"`
	IsPaid       bool            `json:"isPaid"`
	IsPickedUp   bool            `json:"isPickedUp"`
	Memo         string          `json:"memo,omitempty"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Lines        []Line          `json:"lines"`
}

// PickupDay returns the calendar date the order is collected on.
func (o Order) PickupDay() Day {
	return DayOf(o.PickupAt)
}
