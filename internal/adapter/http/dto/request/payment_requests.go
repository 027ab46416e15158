package request

import "strings"

// InitializePaymentRequest starts a Paystack charge. Amounts are intentionally
// absent: the server resolves them from the target record.

type InitializePaymentRequest struct {
	Email    string `json:"email"`
	Purpose  string `json:"purpose"`
	TargetID string `json:"target_id"`
	Tier     string `json:"tier,omitempty"`
}

// StkPushRequest asks the telecom to prompt the customer's phone.

type StkPushRequest struct {
	BookingID   string `json:"bookingId"`
	PhoneNumber string `json:"phoneNumber"`
}

// VerifyRequest resolves a reference against Paystack on demand.

type VerifyRequest struct {
	Reference string `json:"reference"`
}

func (r VerifyRequest) ResolveReference() string {
	return strings.TrimSpace(r.Reference)
}

// CreateBookingRequest is the user-facing booking creation payload.

type CreateBookingRequest struct {
	UserID        string `json:"user_id"`
	SessionID     string `json:"session_id"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	TotalPrice    int64  `json:"total_price"`
}
