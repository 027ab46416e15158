package notify

import (
	"context"
	"sync"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Dispatcher is the fire-and-forget outbox worker: reconciliation returns
// pending notifications, handlers submit them here, and workers deliver them
// off the request path. Delivery errors are logged and swallowed; they never
// affect the payment write.

type Dispatcher struct {
	jobs      chan entities.Notification
	notifiers map[entities.NotificationChannel]interfaces.INotifier
	fallback  interfaces.INotifier
	logger    *zap.Logger
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewDispatcher(bufferSize int, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		jobs:      make(chan entities.Notification, bufferSize),
		notifiers: make(map[entities.NotificationChannel]interfaces.INotifier),
		fallback:  NewConsole(),
		logger:    logger,
		timeout:   10 * time.Second,
	}
}

// Register binds a transport to a channel. Not safe to call after Start.
func (d *Dispatcher) Register(channel entities.NotificationChannel, n interfaces.INotifier) {
	d.notifiers[channel] = n
}

func (d *Dispatcher) Start(workerCount int) {
	for i := 0; i < workerCount; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for n := range d.jobs {
		notifier, ok := d.notifiers[n.Channel]
		if !ok {
			notifier = d.fallback
		}

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := notifier.Notify(ctx, n)
		cancel()
		if err != nil {
			d.logger.Error("notification delivery failed",
				zap.String("channel", string(n.Channel)),
				zap.String("subject", n.Subject),
				zap.Error(err),
			)
			continue
		}
		d.logger.Info("notification delivered",
			zap.String("channel", string(n.Channel)),
			zap.String("subject", n.Subject),
		)
	}
}

// Submit enqueues without blocking. A full queue drops the notification;
// delivery is best effort.
func (d *Dispatcher) Submit(n entities.Notification) bool {
	select {
	case d.jobs <- n:
		return true
	default:
		d.logger.Warn("notification queue full, dropping",
			zap.String("channel", string(n.Channel)),
			zap.String("subject", n.Subject),
		)
		return false
	}
}

// SubmitAll enqueues every pending notification from a reconciliation outbox.
func (d *Dispatcher) SubmitAll(ns []entities.Notification) {
	for _, n := range ns {
		d.Submit(n)
	}
}

func (d *Dispatcher) Shutdown() {
	close(d.jobs)
	d.wg.Wait()
}
