package request

import (
	"encoding/json"
	"strings"

	"djflowerz_payments/internal/domain/entities"
)

// PaystackWebhookEnvelope is the vendor event wrapper Paystack posts to the
// webhook endpoint.

type PaystackWebhookEnvelope struct {
	Event string              `json:"event"`
	Data  PaystackWebhookData `json:"data"`
}

type PaystackWebhookData struct {
	Reference     string            `json:"reference"`
	Amount        int64             `json:"amount"`
	Status        string            `json:"status"`
	Currency      string            `json:"currency"`
	GatewayResp   string            `json:"gateway_response"`
	Metadata      json.RawMessage   `json:"metadata,omitempty"`
	Customer      map[string]any    `json:"customer,omitempty"`
	Authorization map[string]string `json:"authorization,omitempty"`
}

// IsChargeEvent reports whether this envelope carries a verdict we reconcile;
// everything else (transfer events, dispute events) is acknowledged unseen.
func (e PaystackWebhookEnvelope) IsChargeEvent() bool {
	return e.Event == "charge.success" || e.Event == "charge.failed"
}

// ToEvent normalizes the Paystack shape into the internal envelope, so the
// reconciler never sees vendor payloads.
func (e PaystackWebhookEnvelope) ToEvent(raw []byte) entities.ReconciliationEvent {
	succeeded := e.Event == "charge.success" && strings.EqualFold(e.Data.Status, "success")
	ev := entities.ReconciliationEvent{
		Provider:  entities.ProviderPaystack,
		Reference: strings.TrimSpace(e.Data.Reference),
		Succeeded: succeeded,
		Amount:    e.Data.Amount,
		Raw:       raw,
	}
	if !succeeded {
		ev.FailureReason = e.Data.GatewayResp
		if ev.FailureReason == "" {
			ev.FailureReason = e.Data.Status
		}
	}
	return ev
}
