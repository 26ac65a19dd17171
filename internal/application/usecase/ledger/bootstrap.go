package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// Bootstrap initializes the store. Without a repository the given seed is
// used directly. With one, a stored ledger wins over the seed, and an empty
// database is filled with the seed first.
func Bootstrap(ctx context.Context, store *Store, seed *entity.Seed, repo adapter.LedgerRepository) error {
	source := seed

	if repo != nil {
		stored, err := repo.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load ledger: %w", err)
		}

		if isEmpty(stored) {
			if err := ValidateSeed(seed.Goals, seed.Transactions, seed.Challenges); err != nil {
				return err
			}
			if err := repo.SaveSeed(ctx, seed); err != nil {
				return fmt.Errorf("failed to store seed: %w", err)
			}
			slog.InfoContext(ctx, "Stored seed ledger in database",
				"goals", len(seed.Goals),
				"transactions", len(seed.Transactions),
				"challenges", len(seed.Challenges),
			)
		} else {
			source = stored
		}
	}

	if err := store.Initialize(source.Goals, source.Transactions, source.Challenges); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Ledger initialized",
		"goals", len(source.Goals),
		"transactions", len(source.Transactions),
		"challenges", len(source.Challenges),
	)
	return nil
}

func isEmpty(seed *entity.Seed) bool {
	return seed == nil || (len(seed.Goals) == 0 && len(seed.Transactions) == 0 && len(seed.Challenges) == 0)
}
