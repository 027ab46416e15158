package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"djflowerz_payments/internal/adapter/http/handlers/mocks"
	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockICheckoutUseCase, *mocks.MockIReconciliationUseCase, *captureSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	checkout := mocks.NewMockICheckoutUseCase(ctrl)
	reconciler := mocks.NewMockIReconciliationUseCase(ctrl)
	sink := &captureSink{}
	h := NewPaymentHandler(checkout, reconciler, sink)

	r := gin.New()
	r.POST("/v1/payments/initialize", h.InitializePayment)
	r.POST("/v1/payments/stkpush", h.InitiateStkPush)
	r.POST("/v1/payments/verify", h.VerifyPayment)
	return r, checkout, reconciler, sink
}

func TestPaymentHandler_InitializePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r, _, _, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/initialize", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		r, checkout, _, _ := newPaymentRouter(t)

		checkout.EXPECT().InitializePaystack(gomock.Any(), gomock.Any()).Return(usecase.InitializeResult{}, usecase.ErrBookingNotFound)

		body := `{"email":"fan@test.com","purpose":"booking","target_id":"bk-missing"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/initialize", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success passes trimmed command through", func(t *testing.T) {
		r, checkout, _, _ := newPaymentRouter(t)

		checkout.EXPECT().
			InitializePaystack(gomock.Any(), usecase.InitializeCommand{Email: "fan@test.com", Purpose: "subscription", TargetID: "user-1", Tier: "monthly"}).
			Return(usecase.InitializeResult{Reference: "DJF-ref", AuthorizationURL: "https://checkout.paystack.com/x", Amount: 150000, Currency: "KES"}, nil)

		body := `{"email":" fan@test.com ","purpose":"subscription","target_id":"user-1","tier":"monthly"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/initialize", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["reference"] != "DJF-ref" {
			t.Fatalf("unexpected reference %v", got["reference"])
		}
	})
}

func TestPaymentHandler_InitiateStkPush(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unavailable maps to 502", func(t *testing.T) {
		r, checkout, _, _ := newPaymentRouter(t)

		checkout.EXPECT().InitiateStkPush(gomock.Any(), gomock.Any()).Return(usecase.StkPushResult{}, usecase.ErrGatewayUnreachable)

		body := `{"bookingId":"bk-1","phoneNumber":"0712345678"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/stkpush", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns checkout request id", func(t *testing.T) {
		r, checkout, _, _ := newPaymentRouter(t)

		checkout.EXPECT().
			InitiateStkPush(gomock.Any(), usecase.StkPushCommand{BookingID: "bk-1", PhoneNumber: "0712345678"}).
			Return(usecase.StkPushResult{CheckoutRequestID: "ws_CO_123", CustomerMessage: "Success. Request accepted for processing"}, nil)

		body := `{"bookingId":"bk-1","phoneNumber":"0712345678"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/stkpush", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["checkoutRequestId"] != "ws_CO_123" {
			t.Fatalf("unexpected checkoutRequestId %v", got["checkoutRequestId"])
		}
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reference", func(t *testing.T) {
		r, _, reconciler, _ := newPaymentRouter(t)

		reconciler.EXPECT().VerifyReference(gomock.Any(), "").Return(entities.PaymentIntent{}, nil, usecase.ErrInvalidReference)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reference from query parameter", func(t *testing.T) {
		r, _, reconciler, sink := newPaymentRouter(t)

		reconciler.EXPECT().VerifyReference(gomock.Any(), "DJF-ref").Return(
			entities.PaymentIntent{Reference: "DJF-ref", Status: entities.IntentStatusSuccess, Amount: 150000, Currency: "KES"},
			[]entities.Notification{{Channel: entities.ChannelTelegram}},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify?reference=DJF-ref", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["success"] != true {
			t.Fatalf("expected success=true, got %v", got["success"])
		}
		if len(sink.notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(sink.notifications))
		}
	})

	t.Run("amount mismatch maps to 409", func(t *testing.T) {
		r, _, reconciler, _ := newPaymentRouter(t)

		reconciler.EXPECT().VerifyReference(gomock.Any(), "DJF-ref").Return(entities.PaymentIntent{}, nil, usecase.ErrAmountMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewBufferString(`{"reference":"DJF-ref"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBookingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockICheckoutUseCase) {
		t.Helper()
		ctrl := gomock.NewController(t)
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewBookingHandler(checkout)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)
		r.GET("/v1/bookings/:id", h.GetBooking)
		return r, checkout
	}

	t.Run("create invalid input", func(t *testing.T) {
		r, checkout := newRouter(t)

		checkout.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrInvalidBookingInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"user_id":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success returns 201", func(t *testing.T) {
		r, checkout := newRouter(t)

		checkout.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(
			entities.Booking{ID: "bk-1", UserID: "user-1", Status: entities.BookingStatusPending, TotalPrice: 1500}, nil)

		body := `{"user_id":"user-1","session_id":"studio-a","scheduled_date":"2026-09-10","scheduled_time":"14:00","total_price":1500}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, checkout := newRouter(t)

		checkout.EXPECT().GetBooking(gomock.Any(), "bk-missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
