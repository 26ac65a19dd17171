// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
)

// BreakdownItemResponse represents one pie chart slice.
type BreakdownItemResponse struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
	Color            string          `json:"color"`
}

// DashboardResponse represents the dashboard in API responses.
type DashboardResponse struct {
	Theme         ThemeResponse           `json:"theme"`
	TotalSaved    decimal.Decimal         `json:"total_saved"`
	TotalExpenses decimal.Decimal         `json:"total_expenses"`
	TotalIncome   decimal.Decimal         `json:"total_income"`
	Breakdown     []BreakdownItemResponse `json:"breakdown"`
	FeaturedGoals []GoalResponse          `json:"featured_goals"`
	Challenges    []ChallengeResponse     `json:"challenges"`
}

// ToDashboardResponse converts the dashboard output to a DashboardResponse DTO.
func ToDashboardResponse(output *ledger.GetDashboardOutput) DashboardResponse {
	response := DashboardResponse{
		Theme:         ToThemeResponse(output.Theme),
		TotalSaved:    output.TotalSaved,
		TotalExpenses: output.TotalExpenses,
		TotalIncome:   output.TotalIncome,
		Breakdown:     make([]BreakdownItemResponse, len(output.Breakdown)),
		FeaturedGoals: make([]GoalResponse, len(output.FeaturedGoals)),
		Challenges:    ToChallengeListResponse(output.Challenges).Challenges,
	}

	for i, slice := range output.Breakdown {
		response.Breakdown[i] = BreakdownItemResponse{
			Category:         slice.Category,
			Amount:           slice.Amount,
			Percentage:       slice.Percentage,
			TransactionCount: slice.TransactionCount,
			Color:            slice.Color,
		}
	}
	for i, g := range output.FeaturedGoals {
		response.FeaturedGoals[i] = ToGoalResponse(g.Goal, g.ProgressPercent)
	}

	return response
}
