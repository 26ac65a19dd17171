package ledger

import (
	"fmt"

	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

// ValidateSeed checks every seed entity against its field invariants and
// reports the first violation as an InvalidSeed ledger error.
func ValidateSeed(goals []*entity.Goal, transactions []*entity.Transaction, challenges []*entity.Challenge) error {
	seen := make(map[string]bool, len(goals))
	for i, g := range goals {
		switch {
		case g == nil:
			return invalidSeed("goal #%d is nil", i)
		case g.ID == "":
			return invalidSeed("goal #%d has no id", i)
		case seen[g.ID]:
			return invalidSeed("goal id %q is duplicated", g.ID)
		case g.Title == "":
			return invalidSeed("goal %q has no title", g.ID)
		case !g.TargetAmount.IsPositive():
			return invalidSeed("goal %q target amount must be positive, got %s", g.ID, g.TargetAmount)
		case g.CurrentAmount.IsNegative():
			return invalidSeed("goal %q current amount must not be negative, got %s", g.ID, g.CurrentAmount)
		}
		seen[g.ID] = true
	}

	seen = make(map[string]bool, len(transactions))
	for i, tx := range transactions {
		switch {
		case tx == nil:
			return invalidSeed("transaction #%d is nil", i)
		case tx.ID == "":
			return invalidSeed("transaction #%d has no id", i)
		case seen[tx.ID]:
			return invalidSeed("transaction id %q is duplicated", tx.ID)
		case tx.Title == "":
			return invalidSeed("transaction %q has no title", tx.ID)
		case !tx.Amount.IsPositive():
			return invalidSeed("transaction %q amount must be positive, got %s", tx.ID, tx.Amount)
		case !tx.Type.IsValid():
			return invalidSeed("transaction %q has unknown type %q", tx.ID, tx.Type)
		}
		seen[tx.ID] = true
	}

	seen = make(map[string]bool, len(challenges))
	for i, ch := range challenges {
		switch {
		case ch == nil:
			return invalidSeed("challenge #%d is nil", i)
		case ch.ID == "":
			return invalidSeed("challenge #%d has no id", i)
		case seen[ch.ID]:
			return invalidSeed("challenge id %q is duplicated", ch.ID)
		case ch.Title == "":
			return invalidSeed("challenge %q has no title", ch.ID)
		case !ch.Difficulty.IsValid():
			return invalidSeed("challenge %q has unknown difficulty %q", ch.ID, ch.Difficulty)
		case ch.RewardXP < 0:
			return invalidSeed("challenge %q reward XP must not be negative, got %d", ch.ID, ch.RewardXP)
		}
		seen[ch.ID] = true
	}

	return nil
}

func invalidSeed(format string, args ...any) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidSeed,
		fmt.Sprintf(format, args...),
		domainerror.ErrInvalidSeed,
	)
}
