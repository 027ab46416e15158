package request

import (
	"encoding/json"
	"testing"

	"djflowerz_payments/internal/domain/entities"
)

func TestPaystackWebhookEnvelope_ToEvent(t *testing.T) {
	raw := []byte(`{"event":"charge.success","data":{"reference":"DJF-1","amount":500000,"status":"success","currency":"KES"}}`)

	var env PaystackWebhookEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !env.IsChargeEvent() {
		t.Fatal("expected charge event")
	}

	ev := env.ToEvent(raw)
	if ev.Provider != entities.ProviderPaystack {
		t.Fatalf("expected paystack provider, got %s", ev.Provider)
	}
	if !ev.Succeeded || ev.Reference != "DJF-1" || ev.Amount != 500000 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestPaystackWebhookEnvelope_FailedCharge(t *testing.T) {
	raw := []byte(`{"event":"charge.failed","data":{"reference":"DJF-2","amount":500000,"status":"failed","gateway_response":"Declined"}}`)

	var env PaystackWebhookEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ev := env.ToEvent(raw)
	if ev.Succeeded {
		t.Fatal("expected failure")
	}
	if ev.FailureReason != "Declined" {
		t.Fatalf("expected gateway_response as reason, got %q", ev.FailureReason)
	}
}

func TestPaystackWebhookEnvelope_IgnoresNonChargeEvents(t *testing.T) {
	var env PaystackWebhookEnvelope
	if err := json.Unmarshal([]byte(`{"event":"transfer.success","data":{}}`), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.IsChargeEvent() {
		t.Fatal("transfer events must not be treated as charges")
	}
}

func TestMpesaCallbackEnvelope_ToEvent(t *testing.T) {
	raw := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "CR123",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 5000.0},
						{"Name": "MpesaReceiptNumber", "Value": "QWE123ABC"},
						{"Name": "TransactionDate", "Value": 20260301121500},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`)

	var env MpesaCallbackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ev := env.ToEvent(raw)
	if ev.Provider != entities.ProviderMpesaStk {
		t.Fatalf("expected mpesa provider, got %s", ev.Provider)
	}
	if !ev.Succeeded || ev.Reference != "CR123" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Amount != 5000 {
		t.Fatalf("expected amount 5000, got %d", ev.Amount)
	}
	if ev.Receipt != "QWE123ABC" {
		t.Fatalf("expected receipt QWE123ABC, got %q", ev.Receipt)
	}
}

func TestMpesaCallbackEnvelope_CancelledPush(t *testing.T) {
	raw := []byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"CR9","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`)

	var env MpesaCallbackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ev := env.ToEvent(raw)
	if ev.Succeeded {
		t.Fatal("expected failure for non-zero result code")
	}
	if ev.FailureReason != "Request cancelled by user" {
		t.Fatalf("unexpected reason %q", ev.FailureReason)
	}
	if ev.Amount != 0 || ev.Receipt != "" {
		t.Fatalf("failed callback must not carry amount/receipt: %+v", ev)
	}
}
