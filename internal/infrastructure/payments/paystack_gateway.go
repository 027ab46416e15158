package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"djflowerz_payments/internal/usecase/interfaces"
)

var (
	ErrMissingPaystackSecretKey = errors.New("missing PAYSTACK_SECRET_KEY")
	ErrPaystackUnreachable      = errors.New("paystack unreachable")
	ErrPaystackDeclined         = errors.New("paystack request declined")
)

const defaultPaystackBaseURL = "https://api.paystack.co"

// PaystackGateway is a thin HTTP wrapper over the Paystack REST API.
//
// It only issues transaction initialize/verify calls; the verdict is applied
// by reconciliation, never here.

type PaystackGateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	mockMode   bool
}

var _ interfaces.IPaystackGateway = (*PaystackGateway)(nil)

func NewPaystackGateway(secretKey string) (*PaystackGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[paystack][gateway] mock mode enabled")
		return &PaystackGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[paystack][gateway] missing PAYSTACK_SECRET_KEY")
		return nil, ErrMissingPaystackSecretKey
	}

	baseURL := strings.TrimRight(getenvDefault("PAYSTACK_BASE_URL", defaultPaystackBaseURL), "/")
	log.Printf("[paystack][gateway] client initialized base_url=%s", baseURL)

	return &PaystackGateway{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		secretKey:  secretKey,
	}, nil
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paystackInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackVerifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

func (g *PaystackGateway) Initialize(ctx context.Context, email string, amount int64, currency, reference string, metadata map[string]string) (interfaces.PaystackInitResult, error) {
	if g.mockMode {
		log.Printf("[paystack][gateway] mock initialize reference=%s amount=%d", reference, amount)
		raw, _ := json.Marshal(map[string]any{
			"authorization_url": "https://checkout.paystack.test/" + reference,
			"access_code":       "mock_" + reference,
			"reference":         reference,
		})
		return interfaces.PaystackInitResult{
			Reference:        reference,
			AuthorizationURL: "https://checkout.paystack.test/" + reference,
			AccessCode:       "mock_" + reference,
			Raw:              raw,
		}, nil
	}

	body := map[string]any{
		"email":     email,
		"amount":    amount,
		"currency":  currency,
		"reference": reference,
	}
	if len(metadata) > 0 {
		body["metadata"] = metadata
	}

	log.Printf("[paystack][gateway] initialize start reference=%s amount=%d currency=%s", reference, amount, currency)
	env, raw, err := g.post(ctx, "/transaction/initialize", body)
	if err != nil {
		return interfaces.PaystackInitResult{}, err
	}

	var data paystackInitData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		log.Printf("[paystack][gateway] initialize response unmarshal failed reference=%s err=%v", reference, err)
		return interfaces.PaystackInitResult{}, err
	}
	log.Printf("[paystack][gateway] initialize success reference=%s access_code=%s", data.Reference, data.AccessCode)

	return interfaces.PaystackInitResult{
		Reference:        data.Reference,
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Raw:              raw,
	}, nil
}

func (g *PaystackGateway) Verify(ctx context.Context, reference string) (interfaces.PaystackVerifyResult, error) {
	if g.mockMode {
		log.Printf("[paystack][gateway] mock verify reference=%s", reference)
		raw, _ := json.Marshal(map[string]any{"status": "success", "reference": reference})
		return interfaces.PaystackVerifyResult{Reference: reference, Status: "success", Raw: raw}, nil
	}

	log.Printf("[paystack][gateway] verify start reference=%s", reference)
	env, raw, err := g.get(ctx, "/transaction/verify/"+reference)
	if err != nil {
		return interfaces.PaystackVerifyResult{}, err
	}

	var data paystackVerifyData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		log.Printf("[paystack][gateway] verify response unmarshal failed reference=%s err=%v", reference, err)
		return interfaces.PaystackVerifyResult{}, err
	}
	log.Printf("[paystack][gateway] verify success reference=%s provider_status=%s amount=%d", data.Reference, data.Status, data.Amount)

	return interfaces.PaystackVerifyResult{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    data.Amount,
		Currency:  data.Currency,
		Raw:       raw,
	}, nil
}

func (g *PaystackGateway) post(ctx context.Context, path string, body any) (paystackEnvelope, json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return paystackEnvelope{}, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return paystackEnvelope{}, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req)
}

func (g *PaystackGateway) get(ctx context.Context, path string) (paystackEnvelope, json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return paystackEnvelope{}, nil, err
	}
	return g.do(req)
}

func (g *PaystackGateway) do(req *http.Request) (paystackEnvelope, json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[paystack][gateway] request failed path=%s err=%v", req.URL.Path, err)
		return paystackEnvelope{}, nil, fmt.Errorf("%w: %v", ErrPaystackUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return paystackEnvelope{}, nil, fmt.Errorf("%w: %v", ErrPaystackUnreachable, err)
	}

	var env paystackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[paystack][gateway] non-json response path=%s status=%d", req.URL.Path, resp.StatusCode)
		return paystackEnvelope{}, nil, fmt.Errorf("%w: http %d", ErrPaystackUnreachable, resp.StatusCode)
	}
	if resp.StatusCode >= 500 {
		return paystackEnvelope{}, nil, fmt.Errorf("%w: http %d", ErrPaystackUnreachable, resp.StatusCode)
	}
	if resp.StatusCode >= 400 || !env.Status {
		log.Printf("[paystack][gateway] request declined path=%s status=%d message=%q", req.URL.Path, resp.StatusCode, env.Message)
		return paystackEnvelope{}, nil, fmt.Errorf("%w: %s", ErrPaystackDeclined, env.Message)
	}
	return env, raw, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYSTACK_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
