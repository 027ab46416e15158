package routes

import (
	"djflowerz_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/initialize", paymentHandler.InitializePayment)
		payments.POST("/stkpush", paymentHandler.InitiateStkPush)
		payments.POST("/verify", paymentHandler.VerifyPayment)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Gateway-facing endpoints; auth happens inside the handler so a
		// rejected delivery is still logged with its remote address.
		webhooks.POST("/paystack", webhookHandler.HandlePaystack)
		webhooks.POST("/mpesa/:token", webhookHandler.HandleMpesaCallback)
	}
}
