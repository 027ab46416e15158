package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"djflowerz_payments/internal/usecase/interfaces"
)

var (
	ErrMissingMpesaCredentials = errors.New("missing MPESA_CONSUMER_KEY/MPESA_CONSUMER_SECRET")
	ErrMissingMpesaShortcode   = errors.New("missing MPESA_SHORTCODE/MPESA_PASSKEY")
	ErrMpesaUnreachable        = errors.New("daraja unreachable")
	ErrMpesaPushRejected       = errors.New("stk push rejected")
)

const defaultMpesaBaseURL = "https://sandbox.safaricom.co.ke"

// MpesaGateway is a thin HTTP wrapper over the Daraja STK push API.
//
// OAuth tokens are cached until shortly before expiry; the CheckoutRequestID
// returned by STKPush is the reference the asynchronous result callback will
// carry.

type MpesaGateway struct {
	httpClient  *http.Client
	baseURL     string
	consumerKey string
	consumerSec string
	shortcode   string
	passkey     string
	callbackURL string
	mockMode    bool

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

var _ interfaces.IMpesaGateway = (*MpesaGateway)(nil)

type MpesaConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
}

func NewMpesaGateway(cfg MpesaConfig) (*MpesaGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[mpesa][gateway] mock mode enabled")
		return &MpesaGateway{mockMode: true}, nil
	}

	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		log.Printf("[mpesa][gateway] missing consumer credentials")
		return nil, ErrMissingMpesaCredentials
	}
	if cfg.Shortcode == "" || cfg.Passkey == "" {
		log.Printf("[mpesa][gateway] missing shortcode/passkey")
		return nil, ErrMissingMpesaShortcode
	}

	baseURL := strings.TrimRight(getenvDefault("MPESA_BASE_URL", defaultMpesaBaseURL), "/")
	log.Printf("[mpesa][gateway] client initialized base_url=%s shortcode=%s", baseURL, cfg.Shortcode)

	return &MpesaGateway{
		httpClient:  &http.Client{Timeout: 20 * time.Second},
		baseURL:     baseURL,
		consumerKey: cfg.ConsumerKey,
		consumerSec: cfg.ConsumerSecret,
		shortcode:   cfg.Shortcode,
		passkey:     cfg.Passkey,
		callbackURL: cfg.CallbackURL,
	}, nil
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorMessage        string `json:"errorMessage"`
}

func (g *MpesaGateway) STKPush(ctx context.Context, phone string, amount int64, accountRef, description string) (interfaces.StkPushResult, error) {
	if g.mockMode {
		checkoutID := fmt.Sprintf("ws_CO_%d", time.Now().UTC().UnixNano())
		log.Printf("[mpesa][gateway] mock stk push phone=%s amount=%d checkout_request_id=%s", phone, amount, checkoutID)
		raw, _ := json.Marshal(map[string]string{"CheckoutRequestID": checkoutID, "ResponseCode": "0"})
		return interfaces.StkPushResult{CheckoutRequestID: checkoutID, CustomerMessage: "Success. Request accepted for processing", Raw: raw}, nil
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return interfaces.StkPushResult{}, err
	}

	timestamp := time.Now().Format("20060102150405")
	body := map[string]any{
		"BusinessShortCode": g.shortcode,
		"Password":          StkPassword(g.shortcode, g.passkey, timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            amount,
		"PartyA":            phone,
		"PartyB":            g.shortcode,
		"PhoneNumber":       phone,
		"CallBackURL":       g.callbackURL,
		"AccountReference":  accountRef,
		"TransactionDesc":   description,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return interfaces.StkPushResult{}, err
	}

	log.Printf("[mpesa][gateway] stk push start phone=%s amount=%d account_ref=%s", phone, amount, accountRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(payload))
	if err != nil {
		return interfaces.StkPushResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[mpesa][gateway] stk push request failed err=%v", err)
		return interfaces.StkPushResult{}, fmt.Errorf("%w: %v", ErrMpesaUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.StkPushResult{}, fmt.Errorf("%w: %v", ErrMpesaUnreachable, err)
	}

	var out stkPushResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[mpesa][gateway] stk push non-json response status=%d", resp.StatusCode)
		return interfaces.StkPushResult{}, fmt.Errorf("%w: http %d", ErrMpesaUnreachable, resp.StatusCode)
	}
	if resp.StatusCode >= 500 {
		return interfaces.StkPushResult{}, fmt.Errorf("%w: http %d", ErrMpesaUnreachable, resp.StatusCode)
	}
	if resp.StatusCode >= 400 || out.ResponseCode != "0" {
		msg := out.ResponseDescription
		if msg == "" {
			msg = out.ErrorMessage
		}
		log.Printf("[mpesa][gateway] stk push rejected status=%d message=%q", resp.StatusCode, msg)
		return interfaces.StkPushResult{}, fmt.Errorf("%w: %s", ErrMpesaPushRejected, msg)
	}
	log.Printf("[mpesa][gateway] stk push accepted checkout_request_id=%s", out.CheckoutRequestID)

	return interfaces.StkPushResult{
		CheckoutRequestID: out.CheckoutRequestID,
		MerchantRequestID: out.MerchantRequestID,
		CustomerMessage:   out.CustomerMessage,
		Raw:               raw,
	}, nil
}

func (g *MpesaGateway) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.consumerKey, g.consumerSec)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[mpesa][gateway] token request failed err=%v", err)
		return "", fmt.Errorf("%w: %v", ErrMpesaUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[mpesa][gateway] token request rejected status=%d", resp.StatusCode)
		return "", fmt.Errorf("%w: token http %d", ErrMpesaUnreachable, resp.StatusCode)
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMpesaUnreachable, err)
	}

	// Daraja tokens last 3600s; refresh a minute early.
	g.token = out.AccessToken
	g.tokenExpiry = time.Now().Add(59 * time.Minute)
	return g.token, nil
}

// StkPassword builds the Daraja request password:
// base64(shortcode + passkey + timestamp).
func StkPassword(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
}

// NormalizeMsisdn converts local Kenyan formats (07XX..., +2547XX...) into the
// 2547XXXXXXXX form Daraja expects.
func NormalizeMsisdn(phone string) string {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	return p
}
