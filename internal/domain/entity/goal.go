// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target in the GlowUp Wallet ledger.
type Goal struct {
	ID            string
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Emoji         string
	Deadline      *time.Time // Optional
}

// NewGoal creates a new Goal with a generated identifier and nothing saved yet.
func NewGoal(title string, targetAmount decimal.Decimal, emoji string, deadline *time.Time) *Goal {
	return &Goal{
		ID:            uuid.New().String(),
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Emoji:         emoji,
		Deadline:      deadline,
	}
}

// IsCompleted reports whether the goal has reached its target.
func (g *Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Clone returns a deep copy of the goal.
func (g *Goal) Clone() *Goal {
	c := *g
	if g.Deadline != nil {
		d := *g.Deadline
		c.Deadline = &d
	}
	return &c
}
