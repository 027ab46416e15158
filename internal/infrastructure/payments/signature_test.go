package payments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

func hmacHex(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "sk_test_abc123"
	body := []byte(`{"event":"charge.success","data":{"reference":"DJF-1","amount":150000}}`)

	t.Run("valid signature", func(t *testing.T) {
		if !VerifyWebhookSignature(secret, body, hmacHex(secret, body)) {
			t.Fatal("expected valid signature to verify")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if VerifyWebhookSignature(secret, body, hmacHex("sk_test_other", body)) {
			t.Fatal("expected signature from another secret to fail")
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := hmacHex(secret, body)
		tampered := []byte(`{"event":"charge.success","data":{"reference":"DJF-1","amount":999999}}`)
		if VerifyWebhookSignature(secret, tampered, sig) {
			t.Fatal("expected tampered body to fail")
		}
	})

	t.Run("empty secret never verifies", func(t *testing.T) {
		if VerifyWebhookSignature("", body, hmacHex("", body)) {
			t.Fatal("expected empty secret to fail even with matching digest")
		}
	})

	t.Run("empty signature never verifies", func(t *testing.T) {
		if VerifyWebhookSignature(secret, body, "") {
			t.Fatal("expected empty signature to fail")
		}
	})

	t.Run("truncated signature fails", func(t *testing.T) {
		sig := hmacHex(secret, body)
		if VerifyWebhookSignature(secret, body, sig[:64]) {
			t.Fatal("expected truncated signature to fail")
		}
	})
}
