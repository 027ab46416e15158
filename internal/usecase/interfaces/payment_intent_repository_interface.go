package interfaces

import (
	"context"

	"djflowerz_payments/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// MarkSucceededIfPending / MarkFailedIfPending are the idempotence guard: they
// perform a conditional update (status must still be pending) and report
// applied=false when another delivery already moved the intent, without error.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByReference(ctx context.Context, reference string) (entities.PaymentIntent, error)
	MarkSucceededIfPending(ctx context.Context, reference, receipt string) (applied bool, err error)
	MarkFailedIfPending(ctx context.Context, reference, reason string) (applied bool, err error)
}
