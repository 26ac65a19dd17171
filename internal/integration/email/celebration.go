package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
	"github.com/glowup-wallet/backend/internal/integration/email/templates"
)

// CelebrationHandler emails the user when one of their goals is reached.
// It implements adapter.EventHandler.
type CelebrationHandler struct {
	mailer    adapter.Mailer
	renderer  *templates.Renderer
	recipient string
	theme     entity.ThemeDescriptor
}

// NewCelebrationHandler creates a new CelebrationHandler. The theme styles
// the email and supplies the celebration line.
func NewCelebrationHandler(mailer adapter.Mailer, renderer *templates.Renderer, recipient string, theme entity.ThemeDescriptor) *CelebrationHandler {
	return &CelebrationHandler{
		mailer:    mailer,
		renderer:  renderer,
		recipient: recipient,
		theme:     theme,
	}
}

// Name implements adapter.EventHandler.
func (h *CelebrationHandler) Name() string {
	return "celebration_email"
}

// Handle sends the celebration email for GoalCompleted and ignores other events.
func (h *CelebrationHandler) Handle(ctx context.Context, event entity.Event) error {
	completed, ok := event.(entity.GoalCompleted)
	if !ok {
		return nil
	}

	if h.recipient == "" {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeRecipientMissing,
			"no celebration recipient configured",
			domainerror.ErrRecipientMissing,
		)
	}

	celebration := h.theme.Celebration(completed.Title)
	message, err := h.renderer.GoalCompleted(templates.GoalCompletedData{
		Title:       completed.Title,
		Emoji:       completed.Emoji,
		Saved:       completed.CurrentAmount.StringFixed(2),
		Target:      completed.TargetAmount.StringFixed(2),
		Celebration: celebration,
		Accent:      h.theme.Palette.Accent,
		Background:  h.theme.Palette.Background,
	})
	if err != nil {
		return fmt.Errorf("failed to render celebration email: %w", err)
	}

	messageID, err := h.mailer.Deliver(ctx, adapter.Email{
		To:      h.recipient,
		Subject: fmt.Sprintf("%s Goal reached: %s", completed.Emoji, completed.Title),
		HTML:    message.HTML,
		Text:    message.Text,
		Tags: map[string]string{
			"event":   "goal_completed",
			"goal_id": completed.GoalID,
		},
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Celebration email sent",
		"goal_id", completed.GoalID,
		"message_id", messageID,
	)
	return nil
}
