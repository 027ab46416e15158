package interfaces

import (
	"context"
	"encoding/json"
)

// PaystackInitResult is what Paystack returns for a freshly initialized charge.
type PaystackInitResult struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Raw              json.RawMessage
}

// PaystackVerifyResult is the flattened verdict of a Paystack verify call.
type PaystackVerifyResult struct {
	Reference string
	Status    string
	Amount    int64
	Currency  string
	Raw       json.RawMessage
}

// IPaystackGateway abstracts the Paystack REST API (initialize + verify).
//
// The service uses it to start card charges and to resolve a reference to its
// final verdict; the raw provider body is kept for traceability.
type IPaystackGateway interface {
	Initialize(ctx context.Context, email string, amount int64, currency, reference string, metadata map[string]string) (PaystackInitResult, error)
	Verify(ctx context.Context, reference string) (PaystackVerifyResult, error)
}

// StkPushResult carries the checkout request ID the asynchronous Daraja
// callback will later reference.
type StkPushResult struct {
	CheckoutRequestID string
	MerchantRequestID string
	CustomerMessage   string
	Raw               json.RawMessage
}

// IMpesaGateway abstracts the Daraja STK push API.
type IMpesaGateway interface {
	STKPush(ctx context.Context, phone string, amount int64, accountRef, description string) (StkPushResult, error)
}
