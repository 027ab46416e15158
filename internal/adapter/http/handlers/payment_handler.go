package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "djflowerz_payments/internal/adapter/http/dto/request"
	response "djflowerz_payments/internal/adapter/http/dto/response"
	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/infrastructure/payments"
	"djflowerz_payments/internal/usecase"
	"djflowerz_payments/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationSink receives fire-and-forget notifications produced by a
// reconciliation. Delivery failures never surface to the caller.
type NotificationSink interface {
	SubmitAll(notifications []entities.Notification)
}

// PaymentHandler handles HTTP requests for checkout and verification.

type PaymentHandler struct {
	checkout   usecase.ICheckoutUseCase
	reconciler usecase.IReconciliationUseCase
	sink       NotificationSink
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, reconciler usecase.IReconciliationUseCase, sink NotificationSink) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconciler: reconciler, sink: sink}
}

// InitializePayment starts a Paystack checkout for a booking, order or
// subscription tier.
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	var req request.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] initialize invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initialize start purpose=%s target_id=%s", req.Purpose, req.TargetID)

	result, err := h.checkout.InitializePaystack(c.Request.Context(), usecase.InitializeCommand{
		Email:    strings.TrimSpace(req.Email),
		Purpose:  entities.IntentPurpose(strings.TrimSpace(req.Purpose)),
		TargetID: strings.TrimSpace(req.TargetID),
		Tier:     strings.TrimSpace(req.Tier),
	})
	if err != nil {
		log.Printf("[payment][handler] initialize failed purpose=%s target_id=%s err=%v", req.Purpose, req.TargetID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initialize success reference=%s amount=%d", result.Reference, result.Amount)

	c.JSON(http.StatusOK, response.FromInitializeResult(result))
}

// InitiateStkPush triggers an M-Pesa STK prompt on the payer's phone.
func (h *PaymentHandler) InitiateStkPush(c *gin.Context) {
	var req request.StkPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] stkpush invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] stkpush start booking_id=%s", req.BookingID)

	result, err := h.checkout.InitiateStkPush(c.Request.Context(), usecase.StkPushCommand{
		BookingID:   strings.TrimSpace(req.BookingID),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		log.Printf("[payment][handler] stkpush failed booking_id=%s err=%v", req.BookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] stkpush success booking_id=%s checkout_request_id=%s", req.BookingID, result.CheckoutRequestID)

	c.JSON(http.StatusOK, response.FromStkPushResult(result))
}

// VerifyPayment re-checks a reference against Paystack and reconciles it.
// The reference may arrive in the body or as a query parameter.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyRequest
	_ = c.ShouldBindJSON(&req)
	reference := req.ResolveReference()
	if reference == "" {
		reference = strings.TrimSpace(c.Query("reference"))
	}
	log.Printf("[payment][handler] verify start reference=%s", reference)

	intent, notifications, err := h.reconciler.VerifyReference(c.Request.Context(), reference)
	if err != nil {
		log.Printf("[payment][handler] verify failed reference=%s err=%v", reference, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if h.sink != nil {
		h.sink.SubmitAll(notifications)
	}
	log.Printf("[payment][handler] verify success reference=%s status=%s", intent.Reference, intent.Status)

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReference),
		errors.Is(err, usecase.ErrInvalidPayerEmail),
		errors.Is(err, usecase.ErrInvalidPhoneNumber),
		errors.Is(err, usecase.ErrInvalidPurpose),
		errors.Is(err, usecase.ErrInvalidBookingInput),
		errors.Is(err, usecase.ErrUnknownTier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Target already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Paid amount does not match the expected amount", http.StatusConflict)
	case errors.Is(err, payments.ErrPaystackDeclined), errors.Is(err, payments.ErrMpesaPushRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_DECLINED", "Payment provider declined the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnreachable),
		errors.Is(err, payments.ErrPaystackUnreachable),
		errors.Is(err, payments.ErrMpesaUnreachable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
