package entities

import "time"

// BookingStatus represents the lifecycle of a studio recording session booking.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a studio session booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// IsPaid/Status are mutated exactly once, by reconciliation, via a conditional
// update on is_paid = false. PaymentReference starts as the STK checkout
// request ID (or Paystack reference) and is resolved to the final receipt when
// the callback lands.

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	SessionID     string        `json:"session_id"`
	ScheduledDate string        `json:"scheduled_date"`
	ScheduledTime string        `json:"scheduled_time"`
	TotalPrice    int64         `json:"total_price"`
	PaymentRef    string        `json:"payment_reference,omitempty"`
	IsPaid        bool          `json:"is_paid"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
