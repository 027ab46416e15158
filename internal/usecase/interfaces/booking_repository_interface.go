package interfaces

import (
	"context"

	"djflowerz_payments/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	SetPaymentReference(ctx context.Context, id, reference string) error
	// MarkPaidIfUnpaid confirms the booking (is_paid=true, status=CONFIRMED,
	// payment_reference=reference) only when it is still unpaid.
	MarkPaidIfUnpaid(ctx context.Context, id, reference string) (applied bool, err error)
}
