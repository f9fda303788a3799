package production

import "sort"

// NumberedOrder is an order snapshot annotated with its per-pickup-day
// sequence number.
type NumberedOrder struct {
	Order
	OrderNumber int `json:"orderNumber"`
}

// AssignSequence numbers every order 1..N within its pickup-date partition by
// creation time ascending. Orders with a missing creation time carry the zero
// time and therefore sort to the front of their partition; ties keep the
// caller's input order. The returned slice preserves the input order: the
// sequencer annotates, it never reorders. Numbers are recomputed on every
// call, never persisted.
func AssignSequence(orders []Order) []NumberedOrder {
	partitions := make(map[Day][]int)
	for i, o := range orders {
		day := o.PickupDay()
		partitions[day] = append(partitions[day], i)
	}

	numbers := make([]int, len(orders))
	for _, indices := range partitions {
		sort.SliceStable(indices, func(a, b int) bool {
			return orders[indices[a]].CreatedAt.Before(orders[indices[b]].CreatedAt)
		})
		for pos, idx := range indices {
			numbers[idx] = pos + 1
		}
	}

	out := make([]NumberedOrder, len(orders))
	for i, o := range orders {
		out[i] = NumberedOrder{Order: o, OrderNumber: numbers[i]}
	}
	return out
}
