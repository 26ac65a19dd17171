// Package messaging publishes ledger events to an AMQP broker.
package messaging

import (
	"encoding/json"
	"time"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// GoalCompletedMessage is the wire form of a GoalCompleted event.
// Amounts are decimal strings so consumers never see float rounding.
type GoalCompletedMessage struct {
	Event         string    `json:"event"`
	GoalID        string    `json:"goal_id"`
	Title         string    `json:"title"`
	Emoji         string    `json:"emoji,omitempty"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewGoalCompletedMessage converts the event to its message.
func NewGoalCompletedMessage(e entity.GoalCompleted) *GoalCompletedMessage {
	return &GoalCompletedMessage{
		Event:         string(e.Type()),
		GoalID:        e.GoalID,
		Title:         e.Title,
		Emoji:         e.Emoji,
		TargetAmount:  e.TargetAmount.String(),
		CurrentAmount: e.CurrentAmount.String(),
		OccurredAt:    e.OccurredAt,
	}
}

// ToJSON converts the message to JSON bytes.
func (m *GoalCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// GoalCompletedMessageFromJSON decodes a message from JSON bytes.
func GoalCompletedMessageFromJSON(data []byte) (*GoalCompletedMessage, error) {
	var msg GoalCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
