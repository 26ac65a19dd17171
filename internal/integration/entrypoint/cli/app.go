// Package cli implements the glowup terminal commands.
package cli

import (
	"context"

	"github.com/glowup-wallet/backend/internal/application/usecase/advice"
	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
)

// App holds the use cases the commands run against.
type App struct {
	ListGoals        *ledger.ListGoalsUseCase
	AddFunds         *ledger.AddFundsUseCase
	ListTransactions *ledger.ListTransactionsUseCase
	ListChallenges   *ledger.ListChallengesUseCase
	Dashboard        *ledger.GetDashboardUseCase
	Chat             *advice.ChatUseCase
	Tip              *advice.GetTipUseCase
	Theme            string // used when --theme is not given
}

// Options are the global flags every command shares.
type Options struct {
	SeedPath string
	Theme    string
}

// Loader builds the App once the global flags are parsed.
type Loader func(ctx context.Context, opts Options) (*App, error)
