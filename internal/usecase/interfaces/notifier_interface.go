package interfaces

import (
	"context"

	"djflowerz_payments/internal/domain/entities"
)

// INotifier delivers one notification on a single transport
// (Telegram/email/console). Implementations must be safe for concurrent use;
// the dispatcher fans deliveries out across workers.

type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
