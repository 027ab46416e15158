package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "djflowerz_payments/internal/adapter/http/dto/request"
	response "djflowerz_payments/internal/adapter/http/dto/response"
	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/infrastructure/payments"
	"djflowerz_payments/internal/usecase"
	"djflowerz_payments/pkg"

	"github.com/gin-gonic/gin"
)

const paystackSignatureHeader = "x-paystack-signature"

// WebhookHandler receives gateway callbacks and feeds them to the reconciler.
// Paystack deliveries are authenticated by HMAC signature over the raw body;
// Daraja callbacks by a secret path token (Daraja does not sign payloads).

type WebhookHandler struct {
	reconciler     usecase.IReconciliationUseCase
	sink           NotificationSink
	paystackSecret string
	callbackToken  string
}

func NewWebhookHandler(reconciler usecase.IReconciliationUseCase, sink NotificationSink, paystackSecret, callbackToken string) *WebhookHandler {
	return &WebhookHandler{
		reconciler:     reconciler,
		sink:           sink,
		paystackSecret: paystackSecret,
		callbackToken:  callbackToken,
	}
}

// HandlePaystack processes a Paystack event delivery. The signature is
// checked against the raw bytes before anything is parsed.
func (h *WebhookHandler) HandlePaystack(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] paystack body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	signature := c.GetHeader(paystackSignatureHeader)
	if !payments.VerifyWebhookSignature(h.paystackSecret, raw, signature) {
		log.Printf("[webhook][handler] paystack signature rejected remote=%s", c.ClientIP())
		appErr := pkg.NewDomainErrorSimple("SIGNATURE_INVALID", "Invalid webhook signature", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var envelope request.PaystackWebhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Printf("[webhook][handler] paystack malformed body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !envelope.IsChargeEvent() {
		log.Printf("[webhook][handler] paystack event ignored event=%s", envelope.Event)
		c.JSON(http.StatusOK, response.WebhookAck{Status: true, Message: "event ignored"})
		return
	}

	event := envelope.ToEvent(raw)
	log.Printf("[webhook][handler] paystack event received event=%s reference=%s amount=%d", envelope.Event, event.Reference, event.Amount)

	h.reconcileAndAck(c, event)
}

// HandleMpesaCallback processes a Daraja STK push result callback.
func (h *WebhookHandler) HandleMpesaCallback(c *gin.Context) {
	token := c.Param("token")
	if h.callbackToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.callbackToken)) != 1 {
		log.Printf("[webhook][handler] mpesa callback token rejected remote=%s", c.ClientIP())
		appErr := pkg.NewDomainErrorSimple("SIGNATURE_INVALID", "Invalid callback token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] mpesa body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var envelope request.MpesaCallbackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Printf("[webhook][handler] mpesa malformed body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event := envelope.ToEvent(raw)
	log.Printf("[webhook][handler] mpesa callback received checkout_request_id=%s result_code=%d", event.Reference, envelope.Body.StkCallback.ResultCode)

	h.reconcileAndAck(c, event)
}

// reconcileAndAck runs the reconciler and maps the outcome to the webhook
// contract: business verdicts are acknowledged so the gateway stops retrying,
// only infrastructure failures return 5xx.
func (h *WebhookHandler) reconcileAndAck(c *gin.Context, event entities.ReconciliationEvent) {
	notifications, err := h.reconciler.Reconcile(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, usecase.ErrAmountMismatch) || errors.Is(err, usecase.ErrInvalidReference) || errors.Is(err, usecase.ErrUnknownTier) {
			log.Printf("[webhook][handler] delivery rejected reference=%s err=%v", event.Reference, err)
			c.JSON(http.StatusOK, response.WebhookAck{Status: false, Message: err.Error()})
			return
		}
		log.Printf("[webhook][handler] reconcile failed reference=%s err=%v", event.Reference, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.sink != nil {
		h.sink.SubmitAll(notifications)
	}
	c.JSON(http.StatusOK, response.WebhookAck{Status: true})
}
