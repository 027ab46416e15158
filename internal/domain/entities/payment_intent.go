package entities

import (
	"encoding/json"
	"time"
)

// IntentStatus represents the payment intent outcome.
//
// pending -> success is terminal; pending -> failed is not (a user retry creates
// a fresh reference, never reopens this one).

type IntentStatus string

const (
	IntentStatusPending IntentStatus = "pending"
	IntentStatusSuccess IntentStatus = "success"
	IntentStatusFailed  IntentStatus = "failed"
)

// IntentPurpose says which record the intent pays for.

type IntentPurpose string

const (
	PurposeBooking      IntentPurpose = "booking"
	PurposeOrder        IntentPurpose = "order"
	PurposeSubscription IntentPurpose = "subscription"
)

// PaymentProvider tags which gateway the reference belongs to.

type PaymentProvider string

const (
	ProviderPaystack PaymentProvider = "paystack"
	ProviderMpesaStk PaymentProvider = "mpesa_stk"
)

// PaymentIntent correlates a client-initiated charge with its eventual
// gateway verdict.
//
// Storage model (DynamoDB):
//   - PK: reference
//
// Amount is in the provider's minor units (kobo for Paystack, whole KES for
// M-Pesa) so it can be compared verbatim against what the gateway reports.
//
// ProviderResponseRaw keeps the original gateway body (JSON) for
// traceability/audit, same reason the provider payload is retained on webhook
// events.

type PaymentIntent struct {
	Reference  string          `json:"reference"`
	Amount     int64           `json:"amount"`
	Currency   string          `json:"currency"`
	PayerEmail string          `json:"payer_email"`
	Purpose    IntentPurpose   `json:"purpose"`
	TargetID   string          `json:"target_id"`
	Provider   PaymentProvider `json:"provider"`
	Status     IntentStatus    `json:"status"`

	// Receipt is the provider's final receipt (e.g. the M-Pesa receipt number),
	// filled only on success.
	Receipt string `json:"receipt,omitempty"`

	// Metadata carries purpose-specific extras; subscription intents record
	// "tier" here.
	Metadata map[string]string `json:"metadata,omitempty"`

	ProviderResponseRaw json.RawMessage `json:"provider_response_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
