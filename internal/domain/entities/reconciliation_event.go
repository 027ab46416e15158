package entities

import "encoding/json"

// ReconciliationEvent is the provider-agnostic shape every gateway verdict is
// normalized into at the HTTP boundary, before it reaches the reconciler.
//
// Paystack webhooks/verify responses and Daraja STK callbacks differ wildly in
// shape; the handlers flatten both into this envelope so the reconciler never
// branches on provider payloads.

type ReconciliationEvent struct {
	Provider  PaymentProvider `json:"provider"`
	Reference string          `json:"reference"`
	Succeeded bool            `json:"succeeded"`

	// Amount as reported by the provider, in the same minor units the intent
	// was created with. Zero means the provider did not report one (e.g. a
	// failed STK callback) and the mismatch check is skipped.
	Amount int64 `json:"amount"`

	// Receipt is the provider's settlement receipt (M-Pesa receipt number);
	// empty for Paystack, whose reference already is the final identifier.
	Receipt string `json:"receipt,omitempty"`

	FailureReason string          `json:"failure_reason,omitempty"`
	Raw           json.RawMessage `json:"raw,omitempty"`
}
