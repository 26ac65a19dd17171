package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title        string
	TargetAmount decimal.Decimal
	Emoji        string
	Deadline     *time.Time // Optional
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	store *Store
	repo  adapter.LedgerRepository // Optional
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(store *Store, repo adapter.LedgerRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		store: store,
		repo:  repo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := uc.store.CreateGoal(input.Title, input.TargetAmount, input.Emoji, input.Deadline)
	if err != nil {
		return nil, err
	}

	if uc.repo != nil {
		err := uc.store.WriteThrough(goal.ID, func(snapshot *entity.Goal, position int) error {
			return uc.repo.SaveGoal(ctx, snapshot, position)
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to persist created goal",
				"goal_id", goal.ID,
				"error", err,
			)
		}
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
