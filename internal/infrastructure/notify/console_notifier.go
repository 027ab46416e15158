package notify

import (
	"context"
	"log"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"
)

// ConsoleNotifier logs notifications instead of delivering them; it is the
// fallback when no Telegram/SMTP transport is configured.

type ConsoleNotifier struct{}

var _ interfaces.INotifier = (*ConsoleNotifier)(nil)

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(_ context.Context, n entities.Notification) error {
	log.Printf("[notify] %s :: %s", n.Subject, n.Text)
	return nil
}
