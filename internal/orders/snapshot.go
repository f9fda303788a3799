package orders

import (
	"github.com/minjipark/tteokbang-backend/internal/production"
	"github.com/minjipark/tteokbang-backend/pkg/db/models"
)

// Snapshot normalizes a stored order into the canonical shape the production
// core consumes. Customer must be preloaded for the name to survive; a nil
// line ProductID maps to zero.
func Snapshot(order models.Order) production.Order {
	out := production.Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		PickupAt:   order.PickupAt,
		AllDay:     order.AllDay,
		CreatedAt:  order.CreatedAt,
		IsPaid:     order.IsPaid,
		IsPickedUp: order.IsPickedUp,
		TotalPrice: order.TotalPrice,
		Lines:      make([]production.Line, 0, len(order.Lines)),
	}
	if order.Customer != nil {
		out.CustomerName = order.Customer.Name
	}
	if order.Memo != nil {
		out.Memo = *order.Memo
	}
	for _, line := range order.Lines {
		snap := production.Line{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Unit:        line.Unit,
			HasRice:     line.HasRice,
		}
		if line.ProductID != nil {
			snap.ProductID = *line.ProductID
		}
		out.Lines = append(out.Lines, snap)
	}
	return out
}

// Snapshots maps a batch of stored orders in input order.
func Snapshots(orders []models.Order) []production.Order {
	out := make([]production.Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, Snapshot(order))
	}
	return out
}
