package response

import (
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase"
)

type InitializePaymentResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
}

func FromInitializeResult(r usecase.InitializeResult) InitializePaymentResponse {
	return InitializePaymentResponse{
		Reference:        r.Reference,
		AuthorizationURL: r.AuthorizationURL,
		AccessCode:       r.AccessCode,
		Amount:           r.Amount,
		Currency:         r.Currency,
	}
}

type StkPushResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	CustomerMessage   string `json:"customerMessage,omitempty"`
}

func FromStkPushResult(r usecase.StkPushResult) StkPushResponse {
	return StkPushResponse{
		CheckoutRequestID: r.CheckoutRequestID,
		CustomerMessage:   r.CustomerMessage,
	}
}

type VerifyResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Purpose   string `json:"purpose,omitempty"`
	TargetID  string `json:"target_id,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Receipt   string `json:"receipt,omitempty"`
}

func FromPaymentIntent(p entities.PaymentIntent) VerifyResponse {
	return VerifyResponse{
		Success:   p.Status == entities.IntentStatusSuccess,
		Reference: p.Reference,
		Status:    string(p.Status),
		Purpose:   string(p.Purpose),
		TargetID:  p.TargetID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Receipt:   p.Receipt,
	}
}

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	SessionID     string    `json:"session_id"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	TotalPrice    int64     `json:"total_price"`
	PaymentRef    string    `json:"payment_reference,omitempty"`
	IsPaid        bool      `json:"is_paid"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		SessionID:     b.SessionID,
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		TotalPrice:    b.TotalPrice,
		PaymentRef:    b.PaymentRef,
		IsPaid:        b.IsPaid,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

// WebhookAck is the small acknowledgement body returned for accepted or
// deliberately ignored webhook deliveries.
type WebhookAck struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
}
