// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names a ledger event.
type EventType string

const (
	EventTypeGoalCompleted EventType = "goal.completed"
)

// GoalCompleted is emitted when adding funds moves a goal from below its
// target to at or above it.
type GoalCompleted struct {
	GoalID        string
	Title         string
	Emoji         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	OccurredAt    time.Time
}

// Type implements Event.
func (GoalCompleted) Type() EventType {
	return EventTypeGoalCompleted
}

// Event is implemented by every ledger event.
type Event interface {
	Type() EventType
}
