package payments

import (
	"encoding/base64"
	"testing"
)

func TestStkPassword(t *testing.T) {
	got := StkPassword("174379", "passkey", "20260901120000")
	want := base64.StdEncoding.EncodeToString([]byte("174379passkey20260901120000"))
	if got != want {
		t.Fatalf("StkPassword mismatch: got %q want %q", got, want)
	}
}

func TestNormalizeMsisdn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0712345678", "254712345678"},
		{"+254712345678", "254712345678"},
		{"254712345678", "254712345678"},
		{" 0712345678 ", "254712345678"},
		{"0110123456", "254110123456"},
	}
	for _, tc := range cases {
		if got := NormalizeMsisdn(tc.in); got != tc.want {
			t.Errorf("NormalizeMsisdn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
