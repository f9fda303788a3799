package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjipark/tteokbang-backend/internal/production"
	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
)

type stubOrderSource struct {
	orders []models.Order
}

func (s *stubOrderSource) ListHeadersByPickupRange(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, order := range s.orders {
		if !order.PickupAt.Before(from) && order.PickupAt.Before(to) {
			out = append(out, order)
		}
	}
	return out, nil
}

func TestMonthCountsGroupsByPickupDay(t *testing.T) {
	source := &stubOrderSource{orders: []models.Order{
		{ID: 1, PickupAt: time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)},
		{ID: 2, PickupAt: time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)},
		{ID: 3, PickupAt: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)},
		{ID: 4, PickupAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)},
	}}
	svc, err := NewService(source, time.UTC)
	require.NoError(t, err)

	counts, err := svc.MonthCounts(context.Background(), 2026, time.September)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"2026-09-02": 2,
		"2026-09-10": 1,
	}, counts)
}

func TestDayCountsPaidAndPickedUp(t *testing.T) {
	source := &stubOrderSource{orders: []models.Order{
		{ID: 1, PickupAt: time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC), IsPaid: true, IsPickedUp: true},
		{ID: 2, PickupAt: time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC)},
		{ID: 3, PickupAt: time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), IsPaid: true},
	}}
	svc, err := NewService(source, time.UTC)
	require.NoError(t, err)

	day, err := production.ParseDay("2026-09-02")
	require.NoError(t, err)
	stats, err := svc.Day(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, &DayStats{
		Day:         "2026-09-02",
		Total:       3,
		Unpaid:      1,
		NotPickedUp: 2,
	}, stats)
}

func TestDayRequiresDate(t *testing.T) {
	svc, err := NewService(&stubOrderSource{}, time.UTC)
	require.NoError(t, err)

	_, err = svc.Day(context.Background(), production.Day{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
