package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/calculator"
	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testSeed() *entity.Seed {
	date := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	return &entity.Seed{
		Goals: []*entity.Goal{
			{ID: "1", Title: "Eras Tour Tickets", TargetAmount: dec("800"), CurrentAmount: dec("350"), Emoji: "🎫"},
			{ID: "2", Title: "Summer Euro Trip", TargetAmount: dec("2500"), CurrentAmount: dec("1100"), Emoji: "✈️"},
			{ID: "3", Title: "New Macbook", TargetAmount: dec("1200"), CurrentAmount: dec("200"), Emoji: "💻"},
		},
		Transactions: []*entity.Transaction{
			{ID: "1", Title: "Starbucks", Amount: dec("6.50"), Category: "Food & Drink", Date: date("2023-10-24"), Type: entity.TransactionTypeExpense},
			{ID: "2", Title: "Paycheck", Amount: dec("1200"), Category: "Income", Date: date("2023-10-23"), Type: entity.TransactionTypeIncome},
			{ID: "3", Title: "Zara Haul", Amount: dec("89.99"), Category: "Shopping", Date: date("2023-10-22"), Type: entity.TransactionTypeExpense},
			{ID: "4", Title: "Uber", Amount: dec("24.50"), Category: "Transport", Date: date("2023-10-21"), Type: entity.TransactionTypeExpense},
			{ID: "5", Title: "Spotify", Amount: dec("10.99"), Category: "Subscription", Date: date("2023-10-20"), Type: entity.TransactionTypeExpense},
		},
		Challenges: []*entity.Challenge{
			{ID: "1", Title: "No-Spend Weekend", Description: "Spend $0 on non-essentials this weekend.", Difficulty: entity.ChallengeDifficultyMedium, RewardXP: 500},
			{ID: "2", Title: "Coffee at Home", Description: "Make your own coffee for 7 days straight.", Difficulty: entity.ChallengeDifficultyEasy, RewardXP: 300, Active: true},
			{ID: "3", Title: "Sell 3 Items", Description: "List 3 items on Depop/Vinted.", Difficulty: entity.ChallengeDifficultyHard, RewardXP: 1000},
		},
	}
}

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	seed := testSeed()
	store := NewStore()
	if err := store.Initialize(seed.Goals, seed.Transactions, seed.Challenges); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return store
}

func assertLedgerCode(t *testing.T, err error, code domainerror.LedgerErrorCode) {
	t.Helper()
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected LedgerError, got %T (%v)", err, err)
	}
	if ledgerErr.Code != code {
		t.Errorf("expected code %s, got %s", code, ledgerErr.Code)
	}
}

func TestStore_Initialize(t *testing.T) {
	t.Run("populates all collections", func(t *testing.T) {
		store := newSeededStore(t)
		if got := len(store.ListGoals()); got != 3 {
			t.Errorf("expected 3 goals, got %d", got)
		}
		if got := len(store.ListTransactions()); got != 5 {
			t.Errorf("expected 5 transactions, got %d", got)
		}
		if got := len(store.ListChallenges()); got != 3 {
			t.Errorf("expected 3 challenges, got %d", got)
		}
	})

	t.Run("second call fails", func(t *testing.T) {
		store := newSeededStore(t)
		err := store.Initialize(nil, nil, nil)
		if !errors.Is(err, domainerror.ErrStoreAlreadyInitialized) {
			t.Fatalf("expected ErrStoreAlreadyInitialized, got %v", err)
		}
		if got := len(store.ListGoals()); got != 3 {
			t.Errorf("expected goals to survive, got %d", got)
		}
	})

	t.Run("invalid seed leaves the store empty", func(t *testing.T) {
		seed := testSeed()
		seed.Goals[1].TargetAmount = dec("-1")

		store := NewStore()
		err := store.Initialize(seed.Goals, seed.Transactions, seed.Challenges)
		if !errors.Is(err, domainerror.ErrInvalidSeed) {
			t.Fatalf("expected ErrInvalidSeed, got %v", err)
		}
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidSeed)
		if got := len(store.ListGoals()); got != 0 {
			t.Errorf("expected no goals, got %d", got)
		}

		// A failed attempt does not count as the one initialization.
		valid := testSeed()
		if err := store.Initialize(valid.Goals, valid.Transactions, valid.Challenges); err != nil {
			t.Errorf("expected retry with valid seed to succeed, got %v", err)
		}
	})

	t.Run("seed slices are not aliased", func(t *testing.T) {
		seed := testSeed()
		store := NewStore()
		if err := store.Initialize(seed.Goals, seed.Transactions, seed.Challenges); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seed.Goals[0].CurrentAmount = dec("9999")
		seed.Transactions[0].Amount = dec("9999")

		if got := store.ListGoals()[0].CurrentAmount; !got.Equal(dec("350")) {
			t.Errorf("expected stored goal untouched, got %s", got)
		}
		if got := store.ListTransactions()[0].Amount; !got.Equal(dec("6.50")) {
			t.Errorf("expected stored transaction untouched, got %s", got)
		}
	})
}

func TestStore_AddFunds(t *testing.T) {
	t.Run("completes goal exactly at target", func(t *testing.T) {
		store := newSeededStore(t)

		result, err := store.AddFunds("1", dec("450"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Goal.CurrentAmount.Equal(dec("800")) {
			t.Errorf("expected current amount 800, got %s", result.Goal.CurrentAmount)
		}
		progress, _ := calculator.ProgressPercent(result.Goal)
		if progress != 100 {
			t.Errorf("expected progress 100, got %d", progress)
		}
		if result.Completed == nil {
			t.Fatal("expected GoalCompleted event")
		}
		if result.Completed.GoalID != "1" || result.Completed.Title != "Eras Tour Tickets" {
			t.Errorf("unexpected event %+v", result.Completed)
		}
	})

	t.Run("refunding a completed goal does not emit again", func(t *testing.T) {
		store := newSeededStore(t)
		if _, err := store.AddFunds("1", dec("450")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := store.AddFunds("1", dec("50"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Goal.CurrentAmount.Equal(dec("850")) {
			t.Errorf("expected current amount 850, got %s", result.Goal.CurrentAmount)
		}
		progress, _ := calculator.ProgressPercent(result.Goal)
		if progress != 100 {
			t.Errorf("expected clamped progress 100, got %d", progress)
		}
		if result.Completed != nil {
			t.Error("expected no second GoalCompleted event")
		}
	})

	t.Run("emits exactly once across many increments", func(t *testing.T) {
		store := newSeededStore(t)
		emitted := 0
		for i := 0; i < 30; i++ {
			result, err := store.AddFunds("1", DefaultFundsIncrement)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Completed != nil {
				emitted++
			}
		}
		if emitted != 1 {
			t.Errorf("expected exactly one GoalCompleted, got %d", emitted)
		}
	})

	t.Run("goal seeded at target never emits", func(t *testing.T) {
		seed := testSeed()
		seed.Goals[0].CurrentAmount = dec("800")
		store := NewStore()
		if err := store.Initialize(seed.Goals, nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result, err := store.AddFunds("1", dec("1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Completed != nil {
			t.Error("expected no event for a goal that was already complete")
		}
	})

	t.Run("is additive", func(t *testing.T) {
		split := newSeededStore(t)
		whole := newSeededStore(t)

		if _, err := split.AddFunds("2", dec("12.34")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := split.AddFunds("2", dec("0.66")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := whole.AddFunds("2", dec("13.00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, _ := split.GetGoal("2")
		b, _ := whole.GetGoal("2")
		if !a.CurrentAmount.Equal(b.CurrentAmount) {
			t.Errorf("expected %s == %s", a.CurrentAmount, b.CurrentAmount)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		store := newSeededStore(t)
		for _, amount := range []string{"0", "-50"} {
			_, err := store.AddFunds("1", dec(amount))
			if !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
			}
			assertLedgerCode(t, err, domainerror.ErrCodeInvalidAmount)
		}
		goal, _ := store.GetGoal("1")
		if !goal.CurrentAmount.Equal(dec("350")) {
			t.Errorf("expected unchanged goal, got %s", goal.CurrentAmount)
		}
	})

	t.Run("rejects unknown goal", func(t *testing.T) {
		store := newSeededStore(t)
		_, err := store.AddFunds("missing", dec("10"))
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
		assertLedgerCode(t, err, domainerror.ErrCodeGoalNotFound)
	})

	t.Run("returned goal is a copy", func(t *testing.T) {
		store := newSeededStore(t)
		result, err := store.AddFunds("3", dec("10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result.Goal.CurrentAmount = dec("0")

		goal, _ := store.GetGoal("3")
		if !goal.CurrentAmount.Equal(dec("210")) {
			t.Errorf("expected 210, got %s", goal.CurrentAmount)
		}
	})
}

func TestStore_Snapshots(t *testing.T) {
	store := newSeededStore(t)

	goals := store.ListGoals()
	goals[0].Title = "hacked"
	goals[0].CurrentAmount = dec("0")

	transactions := store.ListTransactions()
	transactions[0].Category = "hacked"

	challenges := store.ListChallenges()
	challenges[0].Active = true

	if got := store.ListGoals()[0]; got.Title != "Eras Tour Tickets" || !got.CurrentAmount.Equal(dec("350")) {
		t.Errorf("goal snapshot leaked into store: %+v", got)
	}
	if got := store.ListTransactions()[0].Category; got != "Food & Drink" {
		t.Errorf("transaction snapshot leaked into store: %s", got)
	}
	if store.ListChallenges()[0].Active {
		t.Error("challenge snapshot leaked into store")
	}
}

func TestStore_CreateGoal(t *testing.T) {
	store := newSeededStore(t)
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	goal, err := store.CreateGoal("Concert Fund", dec("300"), "🎤", &deadline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID == "" {
		t.Error("expected generated id")
	}
	if !goal.CurrentAmount.IsZero() {
		t.Errorf("expected new goal to start at zero, got %s", goal.CurrentAmount)
	}

	fetched, err := store.GetGoal(goal.ID)
	if err != nil {
		t.Fatalf("expected created goal to be retrievable: %v", err)
	}
	if fetched.Title != "Concert Fund" {
		t.Errorf("expected title Concert Fund, got %s", fetched.Title)
	}
	if got := len(store.ListGoals()); got != 4 {
		t.Errorf("expected 4 goals, got %d", got)
	}

	t.Run("rejects non-positive target", func(t *testing.T) {
		_, err := store.CreateGoal("Nothing", dec("0"), "", nil)
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidAmount)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := store.CreateGoal("", dec("10"), "", nil)
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidGoalTitle)
	})
}
