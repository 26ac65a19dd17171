// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// LedgerRepository persists a snapshot of the ledger. The in-memory store
// stays authoritative; the repository only feeds it at startup and receives
// goal writes afterwards.
type LedgerRepository interface {
	// Load returns the stored ledger. An empty database yields an empty seed.
	Load(ctx context.Context) (*entity.Seed, error)

	// SaveSeed stores every entity of the seed.
	SaveSeed(ctx context.Context, seed *entity.Seed) error

	// SaveGoal inserts or updates a single goal. position is the goal's
	// insertion index in the store and is only used for inserts.
	SaveGoal(ctx context.Context, goal *entity.Goal, position int) error
}
