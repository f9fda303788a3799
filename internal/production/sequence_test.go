package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day string, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAssignSequenceByCreationTime(t *testing.T) {
	t.Parallel()
	// Input deliberately shuffled relative to creation order.
	orders := []Order{
		{ID: 30, PickupAt: pickup("2025-09-12"), CreatedAt: at("2025-09-12", "09:10")},
		{ID: 10, PickupAt: pickup("2025-09-12"), CreatedAt: at("2025-09-12", "09:00")},
		{ID: 20, PickupAt: pickup("2025-09-12"), CreatedAt: at("2025-09-12", "09:05")},
	}

	numbered := AssignSequence(orders)
	require.Len(t, numbered, 3)

	// Annotation only: the input order is preserved.
	assert.Equal(t, int64(30), numbered[0].ID)
	assert.Equal(t, int64(10), numbered[1].ID)
	assert.Equal(t, int64(20), numbered[2].ID)

	assert.Equal(t, 3, numbered[0].OrderNumber)
	assert.Equal(t, 1, numbered[1].OrderNumber)
	assert.Equal(t, 2, numbered[2].OrderNumber)
}

func TestAssignSequencePartitionsByPickupDay(t *testing.T) {
	t.Parallel()
	orders := []Order{
		{ID: 1, PickupAt: pickup("2025-09-12"), CreatedAt: at("2025-09-10", "09:00")},
		{ID: 2, PickupAt: pickup("2025-09-13"), CreatedAt: at("2025-09-10", "09:01")},
		{ID: 3, PickupAt: pickup("2025-09-12").Add(15 * time.Hour), CreatedAt: at("2025-09-10", "09:02")},
	}

	numbered := AssignSequence(orders)
	assert.Equal(t, 1, numbered[0].OrderNumber)
	assert.Equal(t, 1, numbered[1].OrderNumber, "each day numbers independently")
	assert.Equal(t, 2, numbered[2].OrderNumber, "time-of-day does not split the partition")
}

func TestAssignSequenceContiguous(t *testing.T) {
	t.Parallel()
	var orders []Order
	for i := 0; i < 5; i++ {
		orders = append(orders, Order{
			ID:        int64(i + 1),
			PickupAt:  pickup("2025-09-12"),
			CreatedAt: at("2025-09-11", "10:00").Add(time.Duration(i) * time.Minute),
		})
	}

	numbered := AssignSequence(orders)
	seen := make(map[int]bool)
	for i, n := range numbered {
		seen[n.OrderNumber] = true
		assert.Equal(t, i+1, n.OrderNumber)
	}
	for want := 1; want <= len(orders); want++ {
		assert.True(t, seen[want], "sequence numbers must be contiguous, missing %d", want)
	}
}

func TestAssignSequenceMissingCreatedAtIsStable(t *testing.T) {
	t.Parallel()
	orders := []Order{
		{ID: 1, PickupAt: pickup("2025-09-12")}, // zero CreatedAt
		{ID: 2, PickupAt: pickup("2025-09-12")}, // zero CreatedAt
		{ID: 3, PickupAt: pickup("2025-09-12"), CreatedAt: at("2025-09-11", "08:00")},
	}

	first := AssignSequence(orders)
	second := AssignSequence(orders)
	assert.Equal(t, first, second, "ties must not reshuffle between runs")

	// Zero timestamps sort before real ones, keeping input order among themselves.
	assert.Equal(t, 1, first[0].OrderNumber)
	assert.Equal(t, 2, first[1].OrderNumber)
	assert.Equal(t, 3, first[2].OrderNumber)
}

func TestAssignSequenceEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, AssignSequence(nil))
}
