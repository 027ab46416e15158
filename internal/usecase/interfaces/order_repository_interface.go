package interfaces

import (
	"context"

	"djflowerz_payments/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	MarkPaidIfUnpaid(ctx context.Context, id, reference string) (applied bool, err error)
}
