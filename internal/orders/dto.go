package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjipark/tteokbang-backend/internal/production"
	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

// LineInput is one cake on an incoming order. UnitPrice is optional; when
// omitted the service resolves it from the product's price sheet.
type LineInput struct {
	ProductID *int64           `json:"productId,omitempty"`
	Name      string           `json:"productName" validate:"max=100"`
	Quantity  decimal.Decimal  `json:"quantity"`
	Unit      enums.Unit       `json:"unit" validate:"required"`
	HasRice   bool             `json:"hasRice"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
}

// OrderInput carries the writable fields of an order. The kiosk submits
// PickupAt at midnight with AllDay set when no time slot was chosen.
type OrderInput struct {
	CustomerID int64       `json:"customerId" validate:"required,gt=0"`
	PickupAt   time.Time   `json:"pickupDate" validate:"required"`
	AllDay     bool        `json:"isAllDay"`
	IsPaid     bool        `json:"isPaid"`
	Memo       *string     `json:"memo,omitempty" validate:"omitempty,max=500"`
	Lines      []LineInput `json:"lines" validate:"required,min=1,dive"`
}

// ListSort names the order-list sort modes.
type ListSort string

const (
	SortByOrderNumber  ListSort = "orderNumber"
	SortByPickupTime   ListSort = "time"
	SortByProductName  ListSort = "cake"
	SortByPickupStatus ListSort = "status"
)

// IsValid reports whether the sort mode is one the list endpoint supports.
func (s ListSort) IsValid() bool {
	switch s {
	case SortByOrderNumber, SortByPickupTime, SortByProductName, SortByPickupStatus:
		return true
	}
	return false
}

// Match reasons annotate search hits the way the order list displays them.
const (
	MatchCustomerName = "customerName"
	MatchProductName  = "productName"
	MatchMemo         = "memo"
)

// ListDayInput selects and shapes one day's orders.
type ListDayInput struct {
	Day    production.Day
	Search string
	Sort   ListSort
	// IDs restricts the result to the given order IDs. The production view
	// uses it to show a task's contributing orders.
	IDs []int64
}

// DayOrder is one row of the day's order list: the sequenced snapshot plus
// the search-match annotations.
type DayOrder struct {
	production.NumberedOrder
	MatchReasons []string `json:"matchReasons,omitempty"`
}
