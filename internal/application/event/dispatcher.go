// Package event fans ledger events out to subscribers.
package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// Dispatcher delivers every event to all registered handlers concurrently
// and waits for them. It implements adapter.EventPublisher.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []adapter.EventHandler
}

// NewDispatcher creates a new Dispatcher with the given handlers.
func NewDispatcher(handlers ...adapter.EventHandler) *Dispatcher {
	return &Dispatcher{
		handlers: handlers,
	}
}

// Subscribe registers another handler.
func (d *Dispatcher) Subscribe(handler adapter.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

// Publish delivers the event and logs handler failures.
func (d *Dispatcher) Publish(ctx context.Context, event entity.Event) {
	_ = d.Dispatch(ctx, event)
}

// Dispatch delivers the event and returns the joined handler errors.
// A failing handler does not stop the others.
func (d *Dispatcher) Dispatch(ctx context.Context, event entity.Event) error {
	d.mu.RLock()
	handlers := make([]adapter.EventHandler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	var (
		g      errgroup.Group
		errMu  sync.Mutex
		failed []error
	)

	for _, handler := range handlers {
		handler := handler
		g.Go(func() error {
			if err := handler.Handle(ctx, event); err != nil {
				slog.WarnContext(ctx, "Event handler failed",
					"handler", handler.Name(),
					"event", event.Type(),
					"error", err,
				)
				errMu.Lock()
				failed = append(failed, fmt.Errorf("%s: %w", handler.Name(), err))
				errMu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()
	return errors.Join(failed...)
}
