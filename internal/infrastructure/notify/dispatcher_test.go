package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"djflowerz_payments/internal/domain/entities"

	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu       sync.Mutex
	received []entities.Notification
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, n entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, n)
	return r.err
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

func TestDispatcher_DeliversByChannel(t *testing.T) {
	telegram := &recordingNotifier{}
	email := &recordingNotifier{}

	d := NewDispatcher(8, zap.NewNop())
	d.Register(entities.ChannelTelegram, telegram)
	d.Register(entities.ChannelEmail, email)
	d.Start(2)

	d.SubmitAll([]entities.Notification{
		{Channel: entities.ChannelTelegram, Subject: "Payment received"},
		{Channel: entities.ChannelEmail, Subject: "Payment received", Recipient: "fan@test.com"},
		{Channel: entities.ChannelTelegram, Subject: "Subscription extended"},
	})
	d.Shutdown()

	if telegram.count() != 2 {
		t.Fatalf("expected 2 telegram notifications, got %d", telegram.count())
	}
	if email.count() != 1 {
		t.Fatalf("expected 1 email notification, got %d", email.count())
	}
}

func TestDispatcher_UnknownChannelFallsBack(t *testing.T) {
	fallback := &recordingNotifier{}

	d := NewDispatcher(8, zap.NewNop())
	d.fallback = fallback
	d.Start(1)

	d.Submit(entities.Notification{Channel: "pager", Subject: "hello"})
	d.Shutdown()

	if fallback.count() != 1 {
		t.Fatalf("expected fallback delivery, got %d", fallback.count())
	}
}

func TestDispatcher_DeliveryErrorIsSwallowed(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("telegram api down")}
	email := &recordingNotifier{}

	d := NewDispatcher(8, zap.NewNop())
	d.Register(entities.ChannelTelegram, failing)
	d.Register(entities.ChannelEmail, email)
	d.Start(1)

	d.SubmitAll([]entities.Notification{
		{Channel: entities.ChannelTelegram, Subject: "will fail"},
		{Channel: entities.ChannelEmail, Subject: "still delivered"},
	})
	d.Shutdown()

	if failing.count() != 1 {
		t.Fatalf("expected failing notifier to be attempted, got %d", failing.count())
	}
	if email.count() != 1 {
		t.Fatalf("expected delivery to continue after a failure, got %d", email.count())
	}
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	d := NewDispatcher(1, zap.NewNop())
	// No workers started, so the buffer never drains.

	if ok := d.Submit(entities.Notification{Channel: entities.ChannelConsole}); !ok {
		t.Fatal("expected first submit to fit the buffer")
	}
	if ok := d.Submit(entities.Notification{Channel: entities.ChannelConsole}); ok {
		t.Fatal("expected second submit to be dropped")
	}
}
