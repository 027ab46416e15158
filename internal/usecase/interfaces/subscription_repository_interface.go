package interfaces

import (
	"context"

	"djflowerz_payments/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// Upsert overwrites the user's single subscription row; the caller computes the
// extended end date (max(now, current_end) + tier duration) before writing.

type ISubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
	Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
}
