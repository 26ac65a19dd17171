// Package ledger contains the authoritative in-memory ledger and the use
// cases that read and mutate it.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

// AddFundsResult is the outcome of a successful AddFunds call.
type AddFundsResult struct {
	Goal      *entity.Goal
	Completed *entity.GoalCompleted // nil unless this call crossed the target
}

// Store exclusively owns the goals, transactions and challenges collections.
// Every read returns copies, so callers cannot mutate the store through them.
type Store struct {
	mu           sync.RWMutex
	initialized  bool
	goals        []*entity.Goal
	goalIndex    map[string]int
	transactions []*entity.Transaction
	challenges   []*entity.Challenge
	now          func() time.Time

	// writeMu orders write-through saves; it is never held together with mu
	// across a save.
	writeMu sync.Mutex
}

// NewStore creates an empty, uninitialized store.
func NewStore() *Store {
	return &Store{
		goalIndex: make(map[string]int),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Initialize populates the store from seed data. It may be called once; a seed
// entity that violates its invariants aborts the whole call and leaves the
// store empty.
func (s *Store) Initialize(goals []*entity.Goal, transactions []*entity.Transaction, challenges []*entity.Challenge) error {
	if err := ValidateSeed(goals, transactions, challenges); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeStoreAlreadyInitialized,
			"ledger store is already initialized",
			domainerror.ErrStoreAlreadyInitialized,
		)
	}

	s.goals = make([]*entity.Goal, 0, len(goals))
	s.goalIndex = make(map[string]int, len(goals))
	for _, g := range goals {
		s.goalIndex[g.ID] = len(s.goals)
		s.goals = append(s.goals, g.Clone())
	}

	s.transactions = make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		c := *tx
		s.transactions = append(s.transactions, &c)
	}

	s.challenges = make([]*entity.Challenge, 0, len(challenges))
	for _, ch := range challenges {
		c := *ch
		s.challenges = append(s.challenges, &c)
	}

	s.initialized = true
	return nil
}

// AddFunds adds a positive amount to a goal. When the addition moves the goal
// from below its target to at or above it, the result carries a GoalCompleted
// event. A goal already at its target accepts further funds without emitting again.
func (s *Store) AddFunds(goalID string, amount decimal.Decimal) (*AddFundsResult, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.goalIndex[goalID]
	if !ok {
		return nil, goalNotFound(goalID)
	}

	goal := s.goals[i]
	wasCompleted := goal.IsCompleted()
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)

	result := &AddFundsResult{Goal: goal.Clone()}
	if !wasCompleted && goal.IsCompleted() {
		result.Completed = &entity.GoalCompleted{
			GoalID:        goal.ID,
			Title:         goal.Title,
			Emoji:         goal.Emoji,
			TargetAmount:  goal.TargetAmount,
			CurrentAmount: goal.CurrentAmount,
			OccurredAt:    s.now(),
		}
	}

	return result, nil
}

// CreateGoal adds a new goal with nothing saved yet.
func (s *Store) CreateGoal(title string, targetAmount decimal.Decimal, emoji string, deadline *time.Time) (*entity.Goal, error) {
	if title == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidGoalTitle,
			"goal title is required",
			domainerror.ErrInvalidGoalTitle,
		)
	}
	if !targetAmount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	goal := entity.NewGoal(title, targetAmount, emoji, deadline)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.goalIndex[goal.ID] = len(s.goals)
	s.goals = append(s.goals, goal)

	return goal.Clone(), nil
}

// WriteThrough calls save with the newest snapshot of a goal and its
// insertion position. Calls are serialized and the snapshot is taken after
// the previous save returned, so the last save always carries the latest
// amount even when concurrent callers finish out of order.
func (s *Store) WriteThrough(goalID string, save func(goal *entity.Goal, position int) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	i, ok := s.goalIndex[goalID]
	var goal *entity.Goal
	if ok {
		goal = s.goals[i].Clone()
	}
	s.mu.RUnlock()

	if !ok {
		return goalNotFound(goalID)
	}
	return save(goal, i)
}

// GetGoal returns a copy of a single goal.
func (s *Store) GetGoal(goalID string) (*entity.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.goalIndex[goalID]
	if !ok {
		return nil, goalNotFound(goalID)
	}
	return s.goals[i].Clone(), nil
}

// ListGoals returns a snapshot of all goals in insertion order.
func (s *Store) ListGoals() []*entity.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

// ListTransactions returns a snapshot of all transactions in seed order.
func (s *Store) ListTransactions() []*entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Transaction, len(s.transactions))
	for i, tx := range s.transactions {
		c := *tx
		out[i] = &c
	}
	return out
}

// ListChallenges returns a snapshot of all challenges in seed order.
func (s *Store) ListChallenges() []*entity.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Challenge, len(s.challenges))
	for i, ch := range s.challenges {
		c := *ch
		out[i] = &c
	}
	return out
}

func goalNotFound(goalID string) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found: "+goalID,
		domainerror.ErrGoalNotFound,
	)
}
