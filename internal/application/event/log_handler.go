package event

import (
	"context"
	"log/slog"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// LogHandler writes every event to the structured log.
type LogHandler struct{}

// NewLogHandler creates a new LogHandler.
func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

// Name implements adapter.EventHandler.
func (h *LogHandler) Name() string {
	return "log"
}

// Handle implements adapter.EventHandler.
func (h *LogHandler) Handle(ctx context.Context, event entity.Event) error {
	switch e := event.(type) {
	case entity.GoalCompleted:
		slog.InfoContext(ctx, "Goal reached",
			"goal_id", e.GoalID,
			"title", e.Title,
			"target_amount", e.TargetAmount.StringFixed(2),
			"current_amount", e.CurrentAmount.StringFixed(2),
			"occurred_at", e.OccurredAt,
		)
	default:
		slog.InfoContext(ctx, "Ledger event", "event", event.Type())
	}
	return nil
}
