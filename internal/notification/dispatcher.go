package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=notification
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
}

type Sink interface {
	Send(ctx context.Context, n *Notification) error
}

// Dispatcher records and delivers notifications in the background. Notify never
// blocks on storage or delivery and never reports their failure to the caller.
type Dispatcher struct {
	repo    Repository
	sink    Sink
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(repo Repository, sink Sink) *Dispatcher {
	return &Dispatcher{
		repo:    repo,
		sink:    sink,
		timeout: 10 * time.Second,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, req Request) {
	n := &Notification{
		ID:            uuid.New(),
		AccountID:     req.AccountID,
		TransactionID: req.TransactionID,
		Channel:       req.Channel,
		Content:       Render(req),
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	// The request context ends with the HTTP response; delivery must outlive it.
	ctx = context.WithoutCancel(ctx)

	d.wg.Go(func() {
		d.deliver(ctx, n)
	})
}

// Wait blocks until every notification handed to Notify has been processed.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, n *Notification) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.repo.CreateNotification(ctx, n); err != nil {
		slog.Error("failed to store notification",
			"notification_id", n.ID, "transaction_id", n.TransactionID, "error", err)
	}

	if err := d.sink.Send(ctx, n); err != nil {
		slog.Error("failed to send notification",
			"notification_id", n.ID, "channel", n.Channel, "error", err)

		return
	}

	slog.Info("notification dispatched", "notification_id", n.ID, "channel", n.Channel)
}
