package payments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// VerifyWebhookSignature checks the HMAC-SHA512 hex digest Paystack sends in
// x-paystack-signature against the raw request body.
//
// The body must be the exact bytes received on the wire; callers run this
// before any JSON parsing of the payload. An empty secret or signature never
// verifies.
func VerifyWebhookSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
