package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"djflowerz_payments/internal/adapter/http/handlers/mocks"
	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "sk_test_webhook_secret"

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type captureSink struct {
	notifications []entities.Notification
}

func (s *captureSink) SubmitAll(ns []entities.Notification) {
	s.notifications = append(s.notifications, ns...)
}

func newWebhookRouter(t *testing.T, secret, token string) (*gin.Engine, *mocks.MockIReconciliationUseCase, *captureSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockIReconciliationUseCase(ctrl)
	sink := &captureSink{}
	h := NewWebhookHandler(reconciler, sink, secret, token)

	r := gin.New()
	r.POST("/v1/webhooks/paystack", h.HandlePaystack)
	r.POST("/v1/webhooks/mpesa/:token", h.HandleMpesaCallback)
	return r, reconciler, sink
}

func TestWebhookHandler_HandlePaystack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	chargeSuccess := []byte(`{"event":"charge.success","data":{"reference":"DJF-abc","amount":150000,"status":"success","currency":"KES"}}`)

	t.Run("missing signature is unauthorized", func(t *testing.T) {
		r, reconciler, _ := newWebhookRouter(t, testWebhookSecret, "tok")
		_ = reconciler // no calls expected

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(chargeSuccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("tampered body is unauthorized", func(t *testing.T) {
		r, _, _ := newWebhookRouter(t, testWebhookSecret, "tok")

		tampered := []byte(`{"event":"charge.success","data":{"reference":"DJF-abc","amount":999999,"status":"success"}}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(tampered))
		req.Header.Set("x-paystack-signature", signBody(testWebhookSecret, chargeSuccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unconfigured secret never verifies", func(t *testing.T) {
		r, _, _ := newWebhookRouter(t, "", "tok")

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(chargeSuccess))
		req.Header.Set("x-paystack-signature", signBody("", chargeSuccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed signed body is bad request", func(t *testing.T) {
		r, _, _ := newWebhookRouter(t, testWebhookSecret, "tok")

		body := []byte(`{"event":`)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(body))
		req.Header.Set("x-paystack-signature", signBody(testWebhookSecret, body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non charge event is acknowledged unprocessed", func(t *testing.T) {
		r, _, sink := newWebhookRouter(t, testWebhookSecret, "tok")

		body := []byte(`{"event":"transfer.success","data":{"reference":"TRF-1"}}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(body))
		req.Header.Set("x-paystack-signature", signBody(testWebhookSecret, body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(sink.notifications) != 0 {
			t.Fatalf("expected no notifications, got %d", len(sink.notifications))
		}
	})

	t.Run("valid delivery reconciles and dispatches", func(t *testing.T) {
		r, reconciler, sink := newWebhookRouter(t, testWebhookSecret, "tok")

		reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, event entities.ReconciliationEvent) ([]entities.Notification, error) {
				if event.Provider != entities.ProviderPaystack {
					t.Fatalf("unexpected provider %s", event.Provider)
				}
				if event.Reference != "DJF-abc" || event.Amount != 150000 || !event.Succeeded {
					t.Fatalf("unexpected event %+v", event)
				}
				return []entities.Notification{{Channel: entities.ChannelTelegram, Subject: "Payment received"}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(chargeSuccess))
		req.Header.Set("x-paystack-signature", signBody(testWebhookSecret, chargeSuccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(sink.notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(sink.notifications))
		}
	})

	t.Run("amount mismatch is acknowledged without retry", func(t *testing.T) {
		r, reconciler, sink := newWebhookRouter(t, testWebhookSecret, "tok")

		reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrAmountMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(chargeSuccess))
		req.Header.Set("x-paystack-signature", signBody(testWebhookSecret, chargeSuccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(sink.notifications) != 0 {
			t.Fatalf("expected no notifications, got %d", len(sink.notifications))
		}
	})

	t.Run("storage failure returns 500 so the gateway retries", func(t *testing.T) {
		r, reconciler, _ := newWebhookRouter(t, testWebhookSecret, "tok")

		reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paystack", bytes.NewBuffer(chargeSuccess))
		req.Header.Set("x-paystack-signature", signBody(testWebhookSecret, chargeSuccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_HandleMpesaCallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	callback := []byte(`{"Body":{"stkCallback":{"MerchantRequestID":"MR1","CheckoutRequestID":"ws_CO_123","ResultCode":0,"ResultDesc":"Success","CallbackMetadata":{"Item":[{"Name":"Amount","Value":1500.0},{"Name":"MpesaReceiptNumber","Value":"QWE123ABC"}]}}}}`)

	t.Run("wrong token is unauthorized", func(t *testing.T) {
		r, _, _ := newWebhookRouter(t, testWebhookSecret, "secret-token")

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mpesa/guess", bytes.NewBuffer(callback))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unconfigured token rejects everything", func(t *testing.T) {
		r, _, _ := newWebhookRouter(t, testWebhookSecret, "")

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mpesa/anything", bytes.NewBuffer(callback))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid callback reconciles", func(t *testing.T) {
		r, reconciler, sink := newWebhookRouter(t, testWebhookSecret, "secret-token")

		reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, event entities.ReconciliationEvent) ([]entities.Notification, error) {
				if event.Provider != entities.ProviderMpesaStk {
					t.Fatalf("unexpected provider %s", event.Provider)
				}
				if event.Reference != "ws_CO_123" || event.Amount != 1500 || event.Receipt != "QWE123ABC" {
					t.Fatalf("unexpected event %+v", event)
				}
				return []entities.Notification{{Channel: entities.ChannelEmail}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mpesa/secret-token", bytes.NewBuffer(callback))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(sink.notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(sink.notifications))
		}
	})

	t.Run("cancelled prompt still acknowledged", func(t *testing.T) {
		r, reconciler, _ := newWebhookRouter(t, testWebhookSecret, "secret-token")

		cancelled := []byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_123","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`)
		reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mpesa/secret-token", bytes.NewBuffer(cancelled))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
