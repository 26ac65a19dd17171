package ledger

import (
	"errors"
	"testing"

	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

func TestValidateSeed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(seed *entity.Seed)
	}{
		{name: "zero target", mutate: func(s *entity.Seed) { s.Goals[0].TargetAmount = dec("0") }},
		{name: "negative target", mutate: func(s *entity.Seed) { s.Goals[0].TargetAmount = dec("-800") }},
		{name: "negative current", mutate: func(s *entity.Seed) { s.Goals[0].CurrentAmount = dec("-1") }},
		{name: "goal without id", mutate: func(s *entity.Seed) { s.Goals[0].ID = "" }},
		{name: "goal without title", mutate: func(s *entity.Seed) { s.Goals[0].Title = "" }},
		{name: "duplicate goal id", mutate: func(s *entity.Seed) { s.Goals[1].ID = s.Goals[0].ID }},
		{name: "nil goal", mutate: func(s *entity.Seed) { s.Goals[2] = nil }},
		{name: "zero transaction amount", mutate: func(s *entity.Seed) { s.Transactions[0].Amount = dec("0") }},
		{name: "negative transaction amount", mutate: func(s *entity.Seed) { s.Transactions[0].Amount = dec("-6.50") }},
		{name: "unknown transaction type", mutate: func(s *entity.Seed) { s.Transactions[0].Type = "transfer" }},
		{name: "duplicate transaction id", mutate: func(s *entity.Seed) { s.Transactions[4].ID = "1" }},
		{name: "transaction without title", mutate: func(s *entity.Seed) { s.Transactions[1].Title = "" }},
		{name: "unknown difficulty", mutate: func(s *entity.Seed) { s.Challenges[0].Difficulty = "Extreme" }},
		{name: "negative reward", mutate: func(s *entity.Seed) { s.Challenges[0].RewardXP = -1 }},
		{name: "challenge without id", mutate: func(s *entity.Seed) { s.Challenges[2].ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := testSeed()
			tt.mutate(seed)

			err := ValidateSeed(seed.Goals, seed.Transactions, seed.Challenges)
			if !errors.Is(err, domainerror.ErrInvalidSeed) {
				t.Fatalf("expected ErrInvalidSeed, got %v", err)
			}
			assertLedgerCode(t, err, domainerror.ErrCodeInvalidSeed)
		})
	}
}

func TestValidateSeed_Valid(t *testing.T) {
	seed := testSeed()
	if err := ValidateSeed(seed.Goals, seed.Transactions, seed.Challenges); err != nil {
		t.Errorf("expected valid seed, got %v", err)
	}

	if err := ValidateSeed(nil, nil, nil); err != nil {
		t.Errorf("expected empty seed to be valid, got %v", err)
	}

	// Same id across different collections is fine.
	seed.Challenges[0].ID = seed.Goals[0].ID
	if err := ValidateSeed(seed.Goals, seed.Transactions, seed.Challenges); err != nil {
		t.Errorf("expected ids to be scoped per collection, got %v", err)
	}
}
