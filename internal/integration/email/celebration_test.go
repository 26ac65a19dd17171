package email

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
	"github.com/glowup-wallet/backend/internal/integration/email/templates"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []adapter.Email
	err  error
}

func (m *recordingMailer) Deliver(_ context.Context, email adapter.Email) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return fmt.Sprintf("msg-%d", len(m.sent)), nil
}

type otherEvent struct{}

func (otherEvent) Type() entity.EventType { return "other" }

func newRenderer(t *testing.T) *templates.Renderer {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return renderer
}

func completedEvent() entity.GoalCompleted {
	return entity.GoalCompleted{
		GoalID:        "1",
		Title:         "Eras Tour Tickets",
		Emoji:         "🎫",
		TargetAmount:  decimal.NewFromInt(800),
		CurrentAmount: decimal.NewFromInt(850),
		OccurredAt:    time.Now(),
	}
}

func cleanGirl(t *testing.T) entity.ThemeDescriptor {
	t.Helper()
	theme, ok := entity.LookupTheme(entity.ThemeCleanGirl)
	if !ok {
		t.Fatal("missing Clean Girl theme")
	}
	return theme
}

func TestCelebrationHandler_SendsEmail(t *testing.T) {
	mailer := &recordingMailer{}
	handler := NewCelebrationHandler(mailer, newRenderer(t), "bestie@example.com", cleanGirl(t))

	if err := handler.Handle(context.Background(), completedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mailer.sent))
	}
	sent := mailer.sent[0]
	if sent.To != "bestie@example.com" {
		t.Errorf("unexpected recipient %s", sent.To)
	}
	if !strings.Contains(sent.Subject, "Eras Tour Tickets") {
		t.Errorf("subject misses goal title: %s", sent.Subject)
	}
	if !strings.Contains(sent.Text, "Goal Reached: Eras Tour Tickets!") {
		t.Errorf("text misses celebration: %s", sent.Text)
	}
	if !strings.Contains(sent.Text, "$850.00") || !strings.Contains(sent.Text, "$800.00") {
		t.Errorf("text misses amounts: %s", sent.Text)
	}
	if !strings.Contains(sent.HTML, "Eras Tour Tickets") {
		t.Errorf("html misses goal title: %s", sent.HTML)
	}
	if sent.Tags["goal_id"] != "1" || sent.Tags["event"] != "goal_completed" {
		t.Errorf("unexpected tags %v", sent.Tags)
	}
}

func TestCelebrationHandler_IgnoresOtherEvents(t *testing.T) {
	mailer := &recordingMailer{}
	handler := NewCelebrationHandler(mailer, newRenderer(t), "bestie@example.com", cleanGirl(t))

	if err := handler.Handle(context.Background(), otherEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("expected no email, got %d", len(mailer.sent))
	}
}

func TestCelebrationHandler_Failures(t *testing.T) {
	t.Run("missing recipient", func(t *testing.T) {
		handler := NewCelebrationHandler(&recordingMailer{}, newRenderer(t), "", cleanGirl(t))
		err := handler.Handle(context.Background(), completedEvent())
		if !errors.Is(err, domainerror.ErrRecipientMissing) {
			t.Errorf("expected ErrRecipientMissing, got %v", err)
		}
	})

	t.Run("mailer failure", func(t *testing.T) {
		mailer := &recordingMailer{err: undelivered(errors.New("503 service unavailable"))}
		handler := NewCelebrationHandler(mailer, newRenderer(t), "bestie@example.com", cleanGirl(t))

		err := handler.Handle(context.Background(), completedEvent())
		if !errors.Is(err, domainerror.ErrNotificationUndelivered) {
			t.Errorf("expected undelivered notification, got %v", err)
		}
	})
}

func TestClassifyResendError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domainerror.NotificationErrorCode
	}{
		{"invalid key", errors.New("[ERROR]: API key is invalid"), domainerror.ErrCodeNotificationRejected},
		{"validation", errors.New("422 the to field is invalid"), domainerror.ErrCodeNotificationRejected},
		{"throttled", errors.New("429 Too many requests"), domainerror.ErrCodeNotificationUndelivered},
		{"server error", errors.New("500 Internal Server Error"), domainerror.ErrCodeNotificationUndelivered},
		{"timeout", fmt.Errorf("post: %w", context.DeadlineExceeded), domainerror.ErrCodeNotificationUndelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notificationErr *domainerror.NotificationError
			if !errors.As(classifyResendError(tt.err), &notificationErr) {
				t.Fatalf("expected NotificationError")
			}
			if notificationErr.Code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, notificationErr.Code)
			}
			if !errors.Is(notificationErr, tt.err) {
				t.Error("expected cause to be kept")
			}
		})
	}
}

func TestResendMailer_RequiresRecipient(t *testing.T) {
	mailer, err := NewResendMailer(ResendOptions{APIKey: "re_test", FromName: "GlowUp", FromEmail: "hi@glowup.app"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = mailer.Deliver(context.Background(), adapter.Email{Subject: "hi"})
	if !errors.Is(err, domainerror.ErrRecipientMissing) {
		t.Errorf("expected ErrRecipientMissing, got %v", err)
	}
}

func TestResendMailer_Deliver(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			http.NotFound(w, r)
			return
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"email-123"}`)
	}))
	defer server.Close()

	mailer, err := NewResendMailer(ResendOptions{
		APIKey:    "re_test",
		FromName:  "GlowUp Wallet",
		FromEmail: "hi@glowup.app",
		BaseURL:   server.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := mailer.Deliver(context.Background(), adapter.Email{
		To:      "bestie@example.com",
		Subject: "Goal reached",
		Text:    "yay",
		Tags:    map[string]string{"goal_id": "1", "event": "goal_completed"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "email-123" {
		t.Errorf("expected id email-123, got %s", id)
	}
	if !strings.Contains(body, `"from":"GlowUp Wallet \u003chi@glowup.app\u003e"`) && !strings.Contains(body, `"from":"GlowUp Wallet <hi@glowup.app>"`) {
		t.Errorf("unexpected sender in %s", body)
	}
	if !strings.Contains(body, `"value":"goal_completed"`) || !strings.Contains(body, `"value":"1"`) {
		t.Errorf("expected tags in body, got %s", body)
	}
}
