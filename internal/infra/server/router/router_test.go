package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/application/usecase/advice"
	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/controller"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/middleware"
	"github.com/glowup-wallet/backend/internal/integration/seed"
)

type stubModel struct {
	text     string
	requests []*adapter.AdviceRequest
}

func (m *stubModel) IsAvailable() bool { return true }

func (m *stubModel) Generate(_ context.Context, request *adapter.AdviceRequest) (string, error) {
	m.requests = append(m.requests, request)
	return m.text, nil
}

// busyGate reports every session as already answering.
type busyGate struct{}

func (busyGate) TryAcquire(context.Context, string, time.Duration) (string, bool, error) {
	return "", false, nil
}
func (busyGate) Release(context.Context, string, string) error { return nil }

type testServer struct {
	engine *gin.Engine
	store  *ledger.Store
	model  *stubModel
}

type serverOptions struct {
	gate        adapter.SubmissionGate
	rateLimiter *middleware.RateLimiter
	noModel     bool
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()

	store := ledger.NewStore()
	if err := ledger.Bootstrap(context.Background(), store, seed.Defaults(), nil); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	model := &stubModel{text: "Skip the latte, bestie."}
	var adviceModel adapter.AdviceModel = model
	if opts.noModel {
		adviceModel = nil
	}
	gateway := advice.NewGateway(adviceModel, advice.DefaultModel)

	r := NewRouter(
		controller.NewHealthController(nil, nil),
		controller.NewGoalController(
			ledger.NewListGoalsUseCase(store),
			ledger.NewCreateGoalUseCase(store, nil),
			ledger.NewGetGoalUseCase(store),
			ledger.NewAddFundsUseCase(store, nil, nil),
		),
		controller.NewTransactionController(ledger.NewListTransactionsUseCase(store)),
		controller.NewChallengeController(ledger.NewListChallengesUseCase(store)),
		controller.NewDashboardController(ledger.NewGetDashboardUseCase(store)),
		controller.NewAdviceController(
			advice.NewChatUseCase(store, gateway, opts.gate, advice.DefaultSubmissionTTL),
			advice.NewGetTipUseCase(gateway),
		),
		opts.rateLimiter,
	)

	return &testServer{
		engine: r.Setup("test"),
		store:  store,
		model:  model,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %s: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(t, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decode[controller.HealthResponse](t, w)
	if resp.Database != "disabled" {
		t.Errorf("Database = %q, want disabled", resp.Database)
	}
}

func TestGoalRoutes(t *testing.T) {
	t.Run("list includes progress", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(t, http.MethodGet, "/api/v1/goals", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decode[dto.GoalListResponse](t, w)
		want := []int{44, 44, 17}
		if len(resp.Goals) != len(want) {
			t.Fatalf("len(goals) = %d, want %d", len(resp.Goals), len(want))
		}
		for i, g := range resp.Goals {
			if g.ProgressPercent != want[i] {
				t.Errorf("goals[%d].ProgressPercent = %d, want %d", i, g.ProgressPercent, want[i])
			}
		}
	})

	t.Run("create then get", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(t, http.MethodPost, "/api/v1/goals",
			`{"title":"Pilates Pass","target_amount":"300","emoji":"🧘","deadline":"2025-06-01"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		created := decode[dto.GoalResponse](t, w)
		if created.ID == "" || created.Title != "Pilates Pass" || !created.CurrentAmount.IsZero() {
			t.Errorf("created = %+v", created)
		}
		if created.Deadline == nil || *created.Deadline != "2025-06-01" {
			t.Errorf("Deadline = %v, want 2025-06-01", created.Deadline)
		}

		w = s.do(t, http.MethodGet, "/api/v1/goals/"+created.ID, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("get status = %d, want 200", w.Code)
		}
		if got := decode[dto.GoalResponse](t, w); got.Title != "Pilates Pass" {
			t.Errorf("Title = %q", got.Title)
		}
	})

	t.Run("create rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name     string
			body     string
			wantCode string
		}{
			{name: "missing title", body: `{"target_amount":"300"}`, wantCode: "LDG-020004"},
			{name: "zero target", body: `{"title":"Nothing","target_amount":"0"}`, wantCode: "LDG-020002"},
			{name: "bad deadline", body: `{"title":"Soon","target_amount":"5","deadline":"tomorrow"}`, wantCode: "LDG-020004"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newTestServer(t, serverOptions{})

				w := s.do(t, http.MethodPost, "/api/v1/goals", tt.body, nil)
				if w.Code != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
				}
				if got := decode[dto.ErrorResponse](t, w); got.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
				}
			})
		}
	})

	t.Run("unknown goal is 404", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(t, http.MethodGet, "/api/v1/goals/nope", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if got := decode[dto.ErrorResponse](t, w); got.Code != "LDG-020001" {
			t.Errorf("code = %q, want LDG-020001", got.Code)
		}
	})
}

func TestAddFundsRoute(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		body          string
		wantStatus    int
		wantCurrent   string
		wantCompleted bool
		wantMessage   string
		wantCode      string
	}{
		{
			name:        "empty body adds the default increment",
			path:        "/api/v1/goals/1/funds",
			wantStatus:  http.StatusOK,
			wantCurrent: "400",
		},
		{
			name:        "explicit amount",
			path:        "/api/v1/goals/3/funds",
			body:        `{"amount":"12.34"}`,
			wantStatus:  http.StatusOK,
			wantCurrent: "212.34",
		},
		{
			name:          "crossing the target celebrates in the theme",
			path:          "/api/v1/goals/1/funds?theme=Y2K",
			body:          `{"amount":"450"}`,
			wantStatus:    http.StatusOK,
			wantCurrent:   "800",
			wantCompleted: true,
			wantMessage:   "💖 OMG you did it: Eras Tour Tickets is SO yours now! 💖",
		},
		{
			name:       "zero amount",
			path:       "/api/v1/goals/1/funds",
			body:       `{"amount":"0"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "LDG-020002",
		},
		{
			name:       "malformed body",
			path:       "/api/v1/goals/1/funds",
			body:       `{"amount":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "LDG-020002",
		},
		{
			name:       "unknown theme",
			path:       "/api/v1/goals/1/funds?theme=Goth",
			body:       `{"amount":"5"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "LDG-030001",
		},
		{
			name:       "unknown goal",
			path:       "/api/v1/goals/42/funds",
			body:       `{"amount":"5"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "LDG-020001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, serverOptions{})

			w := s.do(t, http.MethodPost, tt.path, tt.body, nil)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantCode != "" {
				if got := decode[dto.ErrorResponse](t, w); got.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
				}
				return
			}

			resp := decode[dto.AddFundsResponse](t, w)
			if got := resp.Goal.CurrentAmount.String(); got != tt.wantCurrent {
				t.Errorf("current_amount = %s, want %s", got, tt.wantCurrent)
			}
			if resp.GoalCompleted != tt.wantCompleted {
				t.Errorf("goal_completed = %v, want %v", resp.GoalCompleted, tt.wantCompleted)
			}
			if resp.Celebration != tt.wantMessage {
				t.Errorf("celebration = %q, want %q", resp.Celebration, tt.wantMessage)
			}
		})
	}
}

func TestAddFundsRoute_CompletesOnce(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	first := decode[dto.AddFundsResponse](t, s.do(t, http.MethodPost, "/api/v1/goals/1/funds", `{"amount":"450"}`, nil))
	second := decode[dto.AddFundsResponse](t, s.do(t, http.MethodPost, "/api/v1/goals/1/funds", `{"amount":"50"}`, nil))

	if !first.GoalCompleted {
		t.Error("first funding should complete the goal")
	}
	if second.GoalCompleted {
		t.Error("over-saving must not complete the goal again")
	}
	if got := second.Goal.CurrentAmount.String(); got != "850" {
		t.Errorf("current_amount = %s, want 850", got)
	}
	if second.Goal.ProgressPercent != 100 {
		t.Errorf("progress_percent = %d, want 100", second.Goal.ProgressPercent)
	}
}

func TestActivityRoutes(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	transactions := decode[dto.TransactionListResponse](t, s.do(t, http.MethodGet, "/api/v1/transactions", "", nil))
	if len(transactions.Transactions) != 5 || transactions.Transactions[0].Title != "Starbucks" {
		t.Errorf("transactions = %+v", transactions.Transactions)
	}

	challenges := decode[dto.ChallengeListResponse](t, s.do(t, http.MethodGet, "/api/v1/challenges", "", nil))
	if len(challenges.Challenges) != 3 || !challenges.Challenges[1].Active {
		t.Errorf("challenges = %+v", challenges.Challenges)
	}
}

func TestDashboardRoute(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(t, http.MethodGet, "/api/v1/dashboard?theme=Dark%20Academia", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decode[dto.DashboardResponse](t, w)

	if resp.TotalSaved.String() != "1650" {
		t.Errorf("total_saved = %s, want 1650", resp.TotalSaved)
	}
	if resp.TotalExpenses.String() != "131.98" {
		t.Errorf("total_expenses = %s, want 131.98", resp.TotalExpenses)
	}
	if len(resp.FeaturedGoals) != 2 {
		t.Errorf("len(featured_goals) = %d, want 2", len(resp.FeaturedGoals))
	}
	if len(resp.Breakdown) != 4 || resp.Breakdown[0].Color != "#C5A059" {
		t.Errorf("breakdown = %+v", resp.Breakdown)
	}
	if resp.Theme.Key != "Dark Academia" {
		t.Errorf("theme = %q", resp.Theme.Key)
	}

	w = s.do(t, http.MethodGet, "/api/v1/dashboard?theme=Vaporwave", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown theme status = %d, want 400", w.Code)
	}
}

func TestThemesRoute(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	resp := decode[dto.ThemeListResponse](t, s.do(t, http.MethodGet, "/api/v1/themes", "", nil))
	if len(resp.Themes) != 3 {
		t.Fatalf("len(themes) = %d, want 3", len(resp.Themes))
	}
	if resp.Default != "Clean Girl" {
		t.Errorf("default = %q, want Clean Girl", resp.Default)
	}
}

func TestAdviceRoutes(t *testing.T) {
	t.Run("chat answers and echoes a session", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(t, http.MethodPost, "/api/v1/advice/chat?theme=Y2K", `{"message":"  can I afford boots?  "}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if got := decode[dto.ChatResponse](t, w); got.Reply != "Skip the latte, bestie." {
			t.Errorf("reply = %q", got.Reply)
		}
		if w.Header().Get(middleware.SessionHeader) == "" {
			t.Error("expected a session header in the response")
		}

		if len(s.model.requests) != 1 {
			t.Fatalf("model calls = %d, want 1", len(s.model.requests))
		}
		req := s.model.requests[0]
		if req.Prompt != "can I afford boots?" {
			t.Errorf("prompt = %q", req.Prompt)
		}
		if !strings.Contains(req.SystemInstruction, "User Goals: Eras Tour Tickets, Summer Euro Trip, New Macbook. Theme Preference: Y2K") {
			t.Errorf("system instruction missing context: %q", req.SystemInstruction)
		}
	})

	t.Run("chat without a credential still answers", func(t *testing.T) {
		s := newTestServer(t, serverOptions{noModel: true})

		w := s.do(t, http.MethodPost, "/api/v1/advice/chat", `{"message":"hi"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if got := decode[dto.ChatResponse](t, w); got.Reply != advice.AdviceUnavailableText {
			t.Errorf("reply = %q", got.Reply)
		}
	})

	t.Run("chat validation", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "missing message", body: `{}`},
			{name: "blank message", body: `{"message":"   "}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newTestServer(t, serverOptions{})

				w := s.do(t, http.MethodPost, "/api/v1/advice/chat", tt.body, nil)
				if w.Code != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", w.Code)
				}
				if got := decode[dto.ErrorResponse](t, w); got.Code != "ADV-020003" {
					t.Errorf("code = %q, want ADV-020003", got.Code)
				}
				if len(s.model.requests) != 0 {
					t.Errorf("model called %d times", len(s.model.requests))
				}
			})
		}
	})

	t.Run("busy session is refused", func(t *testing.T) {
		s := newTestServer(t, serverOptions{gate: busyGate{}})

		w := s.do(t, http.MethodPost, "/api/v1/advice/chat", `{"message":"again?"}`,
			map[string]string{middleware.SessionHeader: "abc"})
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
		if got := decode[dto.ErrorResponse](t, w); got.Code != "ADV-020001" {
			t.Errorf("code = %q, want ADV-020001", got.Code)
		}
		if got := w.Header().Get(middleware.SessionHeader); got != "abc" {
			t.Errorf("session header = %q, want abc", got)
		}
	})

	t.Run("tip", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(t, http.MethodGet, "/api/v1/advice/tip?theme=Y2K", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decode[dto.TipResponse](t, w)
		if resp.Theme != "Y2K" || resp.Tip != "Skip the latte, bestie." {
			t.Errorf("tip = %+v", resp)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		s := newTestServer(t, serverOptions{rateLimiter: middleware.NewRateLimiter(2, time.Minute)})

		for i := 0; i < 2; i++ {
			if w := s.do(t, http.MethodGet, "/api/v1/advice/tip", "", nil); w.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
			}
		}

		w := s.do(t, http.MethodGet, "/api/v1/advice/tip", "", nil)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", w.Code)
		}
		if got := decode[dto.ErrorResponse](t, w); got.Code != "ADV-020002" {
			t.Errorf("code = %q, want ADV-020002", got.Code)
		}

		if w := s.do(t, http.MethodGet, "/api/v1/goals", "", nil); w.Code != http.StatusOK {
			t.Errorf("ledger routes are not rate limited, got %d", w.Code)
		}
	})
}
