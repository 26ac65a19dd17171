package ledger

import (
	"context"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// ListTransactionsUseCase handles listing transactions.
type ListTransactionsUseCase struct {
	store *Store
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store *Store) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{store: store}
}

// Execute lists all transactions in seed order.
func (uc *ListTransactionsUseCase) Execute(_ context.Context) []*entity.Transaction {
	return uc.store.ListTransactions()
}

// ListChallengesUseCase handles listing challenges.
type ListChallengesUseCase struct {
	store *Store
}

// NewListChallengesUseCase creates a new ListChallengesUseCase instance.
func NewListChallengesUseCase(store *Store) *ListChallengesUseCase {
	return &ListChallengesUseCase{store: store}
}

// Execute lists all challenges in seed order.
func (uc *ListChallengesUseCase) Execute(_ context.Context) []*entity.Challenge {
	return uc.store.ListChallenges()
}
