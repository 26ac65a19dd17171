package advice

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

// DefaultSubmissionTTL bounds how long a lost release keeps a session busy.
const DefaultSubmissionTTL = 30 * time.Second

// ChatInput represents a chat message sent to the GlowUp Guide.
type ChatInput struct {
	SessionID string
	Message   string
	Theme     string
}

// ChatOutput represents the guide's reply.
type ChatOutput struct {
	Reply string
}

// ChatUseCase answers chat messages, one at a time per session.
type ChatUseCase struct {
	store   *ledger.Store
	gateway *Gateway
	gate    adapter.SubmissionGate // Optional
	ttl     time.Duration
}

// NewChatUseCase creates a new ChatUseCase instance. gate may be nil, in
// which case submissions are not serialized.
func NewChatUseCase(store *ledger.Store, gateway *Gateway, gate adapter.SubmissionGate, ttl time.Duration) *ChatUseCase {
	if ttl <= 0 {
		ttl = DefaultSubmissionTTL
	}
	return &ChatUseCase{
		store:   store,
		gateway: gateway,
		gate:    gate,
		ttl:     ttl,
	}
}

// Execute validates the message, claims the session and asks the guide.
// The ledger is read before the model call; no lock is held while waiting.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeEmptyMessage,
			"message is required",
			nil,
		)
	}

	theme, err := ledger.ResolveTheme(input.Theme)
	if err != nil {
		return nil, err
	}

	if uc.gate != nil && input.SessionID != "" {
		token, acquired, err := uc.gate.TryAcquire(ctx, input.SessionID, uc.ttl)
		switch {
		case err != nil:
			// Serialization is best effort; a broken gate must not block chat.
			slog.WarnContext(ctx, "Submission gate unavailable",
				"session_id", input.SessionID,
				"error", err,
			)
		case !acquired:
			return nil, domainerror.NewAdviceError(
				domainerror.ErrCodeSubmissionPending,
				"wait for the previous answer",
				domainerror.ErrSubmissionPending,
			)
		default:
			defer func() {
				if err := uc.gate.Release(context.WithoutCancel(ctx), input.SessionID, token); err != nil {
					slog.WarnContext(ctx, "Failed to release chat session",
						"session_id", input.SessionID,
						"error", err,
					)
				}
			}()
		}
	}

	userContext := BuildAdviceContext(uc.store.ListGoals(), theme.Key)
	return &ChatOutput{
		Reply: uc.gateway.GetAdvice(ctx, message, userContext),
	}, nil
}
