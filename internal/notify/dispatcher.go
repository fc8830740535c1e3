package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Dispatcher wraps a Notifier and sends in the background. Notify
// returns immediately; send errors are logged, never returned. Close
// waits for in-flight sends to finish.
type Dispatcher struct {
	inner Notifier
	log   *slog.Logger
	wg    sync.WaitGroup
}

// NewDispatcher creates an asynchronous decorator around inner.
func NewDispatcher(log *slog.Logger, inner Notifier) *Dispatcher {
	return &Dispatcher{
		inner: inner,
		log:   log.With("component", "notify_dispatcher"),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, email, subject, body string) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		// Detached from the caller's cancellation: a finished request
		// or job must not cancel a send already handed over.
		if err := d.inner.Notify(context.WithoutCancel(ctx), email, subject, body); err != nil {
			d.log.Error("notification delivery failed",
				"email", email, "subject", subject, "error", err)
		}
	}()
	return nil
}

// Close blocks until every queued send has completed.
func (d *Dispatcher) Close() {
	d.wg.Wait()
}
