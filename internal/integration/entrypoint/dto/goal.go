// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Emoji        string          `json:"emoji,omitempty" binding:"max=16"`
	Deadline     *string         `json:"deadline,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// AddFundsRequest represents the request body for adding funds to a goal.
// A missing amount adds the default increment.
type AddFundsRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	Emoji           string          `json:"emoji,omitempty"`
	Deadline        *string         `json:"deadline,omitempty"`
	ProgressPercent int             `json:"progress_percent"`
	Completed       bool            `json:"completed"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// AddFundsResponse represents the response after adding funds.
type AddFundsResponse struct {
	Goal          GoalResponse `json:"goal"`
	GoalCompleted bool         `json:"goal_completed"`
	Celebration   string       `json:"celebration,omitempty"`
}

// ParseDeadline converts the optional request deadline.
func (r CreateGoalRequest) ParseDeadline() (*time.Time, error) {
	if r.Deadline == nil || *r.Deadline == "" {
		return nil, nil
	}
	deadline, err := time.Parse(dateLayout, *r.Deadline)
	if err != nil {
		return nil, err
	}
	return &deadline, nil
}

// ToGoalResponse converts a goal with its progress to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, progressPercent int) GoalResponse {
	response := GoalResponse{
		ID:              g.ID,
		Title:           g.Title,
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		Emoji:           g.Emoji,
		ProgressPercent: progressPercent,
		Completed:       g.IsCompleted(),
	}

	if g.Deadline != nil {
		dateStr := g.Deadline.Format(dateLayout)
		response.Deadline = &dateStr
	}

	return response
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(goals []*ledger.GoalOutput) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, len(goals)),
	}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g.Goal, g.ProgressPercent)
	}
	return response
}

// ToAddFundsResponse converts the add funds output. The celebration line
// comes from the caller's theme.
func ToAddFundsResponse(output *ledger.AddFundsOutput, theme entity.ThemeDescriptor) AddFundsResponse {
	response := AddFundsResponse{
		Goal:          ToGoalResponse(output.Goal, output.ProgressPercent),
		GoalCompleted: output.Completed != nil,
	}
	if output.Completed != nil {
		response.Celebration = theme.Celebration(output.Completed.Title)
	}
	return response
}
