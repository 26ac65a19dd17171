// Package calculator holds the pure derivations the views read from the ledger:
// goal progress, total saved and the expense breakdown by category.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// ProgressPercent returns how far a goal is toward its target as a whole
// percentage in [0, 100]. Halves round away from zero, so 12.5 becomes 13.
func ProgressPercent(goal *entity.Goal) (int, error) {
	if goal.TargetAmount.IsZero() {
		return 0, domainerror.NewLedgerError(
			domainerror.ErrCodeDivisionByZero,
			"goal target amount is zero",
			domainerror.ErrDivisionByZero,
		)
	}

	scaled := goal.CurrentAmount.Mul(hundred)
	target := goal.TargetAmount
	if scaled.Sign()*target.Sign() <= 0 {
		return 0, nil
	}
	scaled, target = scaled.Abs(), target.Abs()
	if scaled.GreaterThanOrEqual(target.Mul(hundred)) {
		return 100, nil
	}

	// Integer quotient with an exact remainder, so the half decision is not
	// subject to division precision.
	quotient, remainder := scaled.QuoRem(target, 0)
	if remainder.Add(remainder).GreaterThanOrEqual(target) {
		quotient = quotient.Add(decimal.NewFromInt(1))
	}
	return int(quotient.IntPart()), nil
}

// TotalSaved sums the current amount across all goals.
func TotalSaved(goals []*entity.Goal) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.CurrentAmount)
	}
	return total
}
