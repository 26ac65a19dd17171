package ledger

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/calculator"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// DefaultFundsIncrement is the amount the "+ $50" goal button adds.
// It is a caller policy; the store accepts any positive amount.
var DefaultFundsIncrement = decimal.NewFromInt(50)

// AddFundsInput represents the input for adding funds to a goal.
type AddFundsInput struct {
	GoalID string
	Amount decimal.Decimal
}

// AddFundsOutput represents the output of adding funds to a goal.
type AddFundsOutput struct {
	Goal            *entity.Goal
	ProgressPercent int
	Completed       *entity.GoalCompleted // nil unless this call reached the target
}

// AddFundsUseCase handles adding funds to a savings goal.
type AddFundsUseCase struct {
	store     *Store
	repo      adapter.LedgerRepository // Optional
	publisher adapter.EventPublisher   // Optional
}

// NewAddFundsUseCase creates a new AddFundsUseCase instance.
// repo and publisher may be nil.
func NewAddFundsUseCase(store *Store, repo adapter.LedgerRepository, publisher adapter.EventPublisher) *AddFundsUseCase {
	return &AddFundsUseCase{
		store:     store,
		repo:      repo,
		publisher: publisher,
	}
}

// Execute adds the funds, writes the goal through to the repository and
// publishes GoalCompleted when the target was reached by this call.
func (uc *AddFundsUseCase) Execute(ctx context.Context, input AddFundsInput) (*AddFundsOutput, error) {
	result, err := uc.store.AddFunds(input.GoalID, input.Amount)
	if err != nil {
		return nil, err
	}

	progress, err := calculator.ProgressPercent(result.Goal)
	if err != nil {
		return nil, err
	}

	// The in-memory store is authoritative, so a failed write-through is
	// logged and the mutation still stands.
	if uc.repo != nil {
		err := uc.store.WriteThrough(result.Goal.ID, func(goal *entity.Goal, position int) error {
			return uc.repo.SaveGoal(ctx, goal, position)
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to persist goal after adding funds",
				"goal_id", result.Goal.ID,
				"error", err,
			)
		}
	}

	if result.Completed != nil {
		slog.InfoContext(ctx, "Goal completed",
			"goal_id", result.Completed.GoalID,
			"title", result.Completed.Title,
		)
		if uc.publisher != nil {
			uc.publisher.Publish(ctx, *result.Completed)
		}
	}

	return &AddFundsOutput{
		Goal:            result.Goal,
		ProgressPercent: progress,
		Completed:       result.Completed,
	}, nil
}
