package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusActive, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// Completed is terminal.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusActive
	case OrderStatusActive:
		return to == OrderStatusPending || to == OrderStatusCompleted
	}
	return false
}

// Order is a pick list: a titled, ordered set of items to collect from storage.
type Order struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Items     []Item      `json:"items"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// Progress summarises how many items of an order have been found.
type Progress struct {
	Found    int     `json:"found"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
	Complete bool    `json:"complete"`
}

// NewProgress computes progress for found out of total items.
// An empty order has zero progress and is never complete.
func NewProgress(found, total int) Progress {
	p := Progress{Found: found, Total: total}
	if total > 0 {
		p.Percent = float64(found) / float64(total) * 100
		p.Complete = found == total
	}
	return p
}

// Progress returns the order's found/total progress.
func (o *Order) Progress() Progress {
	found := 0
	for _, it := range o.Items {
		if it.Found {
			found++
		}
	}
	return NewProgress(found, len(o.Items))
}

// IsComplete reports whether every item has been found. It is a derived
// signal only; it does not change the order's status.
func (o *Order) IsComplete() bool {
	return o.Progress().Complete
}
