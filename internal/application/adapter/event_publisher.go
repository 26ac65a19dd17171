// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// EventHandler reacts to a published ledger event.
type EventHandler interface {
	// Name identifies the handler in logs.
	Name() string

	// Handle processes the event.
	Handle(ctx context.Context, event entity.Event) error
}

// EventPublisher fans ledger events out to the registered handlers.
// Handler failures never propagate to the publisher's caller.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.Event)
}
