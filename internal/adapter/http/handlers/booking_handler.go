package handlers

import (
	"errors"
	"log"
	"net/http"

	request "djflowerz_payments/internal/adapter/http/dto/request"
	response "djflowerz_payments/internal/adapter/http/dto/response"
	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase"
	"djflowerz_payments/pkg"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for studio session bookings.

type BookingHandler struct {
	checkout usecase.ICheckoutUseCase
}

func NewBookingHandler(checkout usecase.ICheckoutUseCase) *BookingHandler {
	return &BookingHandler{checkout: checkout}
}

// CreateBooking registers a pending session booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[booking][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create start user_id=%s session_id=%s", req.UserID, req.SessionID)

	created, err := h.checkout.CreateBooking(c.Request.Context(), entities.Booking{
		UserID:        req.UserID,
		SessionID:     req.SessionID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		log.Printf("[booking][handler] create failed user_id=%s err=%v", req.UserID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromBooking(created))
}

// GetBooking returns a booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[booking][handler] get start booking_id=%s", id)

	booking, err := h.checkout.GetBooking(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] get failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
