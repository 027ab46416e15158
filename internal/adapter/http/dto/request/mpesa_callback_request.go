package request

import (
	"fmt"
	"strings"

	"djflowerz_payments/internal/domain/entities"
)

// MpesaCallbackEnvelope is Daraja's STK result callback body.
//
// CallbackMetadata items arrive as loosely typed Name/Value pairs; amounts may
// be integers or floats depending on the sandbox, so Value stays `any` until
// normalization.

type MpesaCallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []MpesaCallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type MpesaCallbackItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value,omitempty"`
}

// ToEvent normalizes the Daraja callback into the internal envelope.
// ResultCode 0 is the only success code.
func (e MpesaCallbackEnvelope) ToEvent(raw []byte) entities.ReconciliationEvent {
	cb := e.Body.StkCallback

	ev := entities.ReconciliationEvent{
		Provider:  entities.ProviderMpesaStk,
		Reference: strings.TrimSpace(cb.CheckoutRequestID),
		Succeeded: cb.ResultCode == 0,
		Raw:       raw,
	}
	if !ev.Succeeded {
		ev.FailureReason = cb.ResultDesc
		return ev
	}

	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			switch v := item.Value.(type) {
			case float64:
				ev.Amount = int64(v)
			case int64:
				ev.Amount = v
			case string:
				// Some gateways stringify; best effort.
				var parsed float64
				if _, err := fmt.Sscanf(v, "%f", &parsed); err == nil {
					ev.Amount = int64(parsed)
				}
			}
		case "MpesaReceiptNumber":
			if s, ok := item.Value.(string); ok {
				ev.Receipt = s
			}
		}
	}
	return ev
}
