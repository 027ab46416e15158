package entities

import "time"

// OrderStatus represents a product order's fulfillment state.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a digital/physical product or mixtape order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Mutation rules match Booking: paid state is applied exactly once by
// reconciliation through a conditional update.

type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	ItemID     string      `json:"item_id"`
	ItemType   string      `json:"item_type"`
	Amount     int64       `json:"amount"`
	PaymentRef string      `json:"payment_reference,omitempty"`
	IsPaid     bool        `json:"is_paid"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}
