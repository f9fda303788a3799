// Package dashboard serves the calendar view: per-day order counts for the
// month grid dots and the selected day's summary numbers.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/minjipark/tteokbang-backend/internal/production"
	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
)

// orderSource is the slice of the orders repository the dashboard reads.
type orderSource interface {
	ListHeadersByPickupRange(ctx context.Context, from, to time.Time) ([]models.Order, error)
}

// DayStats summarizes one pickup day.
type DayStats struct {
	Day         string `json:"date"`
	Total       int    `json:"totalOrders"`
	Unpaid      int    `json:"unpaidOrders"`
	NotPickedUp int    `json:"notPickedUpOrders"`
}

// Service exposes the calendar queries.
type Service interface {
	MonthCounts(ctx context.Context, year int, month time.Month) (map[string]int, error)
	Day(ctx context.Context, day production.Day) (*DayStats, error)
}

type service struct {
	orders orderSource
	loc    *time.Location
}

// NewService builds the dashboard service. loc is the shop's timezone.
func NewService(orders orderSource, loc *time.Location) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order source required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{orders: orders, loc: loc}, nil
}

// MonthCounts returns the number of orders per pickup day of the month, keyed
// by "YYYY-MM-DD". Days without orders are absent.
func (s *service) MonthCounts(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid month")
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 1, 0)
	rows, err := s.orders.ListHeadersByPickupRange(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list month orders")
	}
	counts := make(map[string]int)
	for _, order := range rows {
		key := production.DayOf(order.PickupAt.In(s.loc)).String()
		counts[key]++
	}
	return counts, nil
}

// Day returns the selected day's totals.
func (s *service) Day(ctx context.Context, day production.Day) (*DayStats, error) {
	if day.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date required")
	}
	from := day.Start(s.loc)
	to := day.Next().Start(s.loc)
	rows, err := s.orders.ListHeadersByPickupRange(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list day orders")
	}
	stats := &DayStats{Day: day.String()}
	for _, order := range rows {
		stats.Total++
		if !order.IsPaid {
			stats.Unpaid++
		}
		if !order.IsPickedUp {
			stats.NotPickedUp++
		}
	}
	return stats, nil
}
