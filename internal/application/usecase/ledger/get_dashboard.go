package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/calculator"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// featuredGoalCount is how many goals the dashboard highlights.
const featuredGoalCount = 2

// GetDashboardInput represents the input for building the dashboard.
type GetDashboardInput struct {
	Theme string
}

// BreakdownSlice is a breakdown category with its chart color.
type BreakdownSlice struct {
	calculator.CategoryShare
	Color string
}

// GetDashboardOutput represents the dashboard view model.
type GetDashboardOutput struct {
	Theme         entity.ThemeDescriptor
	TotalSaved    decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalIncome   decimal.Decimal
	Breakdown     []BreakdownSlice
	FeaturedGoals []*GoalOutput
	Challenges    []*entity.Challenge
}

// GetDashboardUseCase builds the dashboard from the current ledger state.
type GetDashboardUseCase struct {
	store *Store
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(store *Store) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		store: store,
	}
}

// Execute derives totals, the expense breakdown and the featured goals.
func (uc *GetDashboardUseCase) Execute(_ context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	theme, err := ResolveTheme(input.Theme)
	if err != nil {
		return nil, err
	}

	goals := uc.store.ListGoals()
	transactions := uc.store.ListTransactions()

	featured := goals
	if len(featured) > featuredGoalCount {
		featured = featured[:featuredGoalCount]
	}
	featuredOutputs, err := withProgress(featured)
	if err != nil {
		return nil, err
	}

	shares := calculator.BreakdownItems(transactions)
	breakdown := make([]BreakdownSlice, len(shares))
	for i, share := range shares {
		breakdown[i] = BreakdownSlice{
			CategoryShare: share,
			Color:         theme.ChartColor(i),
		}
	}

	return &GetDashboardOutput{
		Theme:         theme,
		TotalSaved:    calculator.TotalSaved(goals),
		TotalExpenses: calculator.TotalExpenses(transactions),
		TotalIncome:   calculator.TotalIncome(transactions),
		Breakdown:     breakdown,
		FeaturedGoals: featuredOutputs,
		Challenges:    uc.store.ListChallenges(),
	}, nil
}
