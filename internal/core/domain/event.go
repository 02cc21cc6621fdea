package domain

import "time"

const (
	EventProductViewed = "view"
	EventAddToCart     = "add_to_cart"
	EventSetQuantity   = "set_quantity"
)

// A ClientEvent describes a single shopper action for the analytics
// pipeline. Quantity is zero for view events.
type ClientEvent struct {
	EventID    string
	Type       string
	ProductID  int
	Quantity   int
	OccurredAt time.Time
}
