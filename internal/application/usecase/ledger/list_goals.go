package ledger

import (
	"context"

	"github.com/glowup-wallet/backend/internal/domain/calculator"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// GoalOutput represents a goal together with its derived progress.
type GoalOutput struct {
	Goal            *entity.Goal
	ProgressPercent int
	Completed       bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals.
type ListGoalsUseCase struct {
	store *Store
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(store *Store) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		store: store,
	}
}

// Execute lists all goals with their progress.
func (uc *ListGoalsUseCase) Execute(_ context.Context) (*ListGoalsOutput, error) {
	goals, err := withProgress(uc.store.ListGoals())
	if err != nil {
		return nil, err
	}
	return &ListGoalsOutput{Goals: goals}, nil
}

// GetGoalUseCase handles fetching a single goal.
type GetGoalUseCase struct {
	store *Store
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(store *Store) *GetGoalUseCase {
	return &GetGoalUseCase{
		store: store,
	}
}

// Execute fetches the goal with its progress.
func (uc *GetGoalUseCase) Execute(_ context.Context, goalID string) (*GoalOutput, error) {
	goal, err := uc.store.GetGoal(goalID)
	if err != nil {
		return nil, err
	}

	outputs, err := withProgress([]*entity.Goal{goal})
	if err != nil {
		return nil, err
	}
	return outputs[0], nil
}

func withProgress(goals []*entity.Goal) ([]*GoalOutput, error) {
	outputs := make([]*GoalOutput, 0, len(goals))
	for _, g := range goals {
		progress, err := calculator.ProgressPercent(g)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, &GoalOutput{
			Goal:            g,
			ProgressPercent: progress,
			Completed:       g.IsCompleted(),
		})
	}
	return outputs, nil
}
