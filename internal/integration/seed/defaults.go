// Package seed provides the initial ledger data: the built-in sample ledger
// and TOML seed files.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// Defaults returns the sample ledger shown on first launch. Every call
// returns fresh values.
func Defaults() *entity.Seed {
	return &entity.Seed{
		Goals: []*entity.Goal{
			{ID: "1", Title: "Eras Tour Tickets", TargetAmount: decimal.NewFromInt(800), CurrentAmount: decimal.NewFromInt(350), Emoji: "🎫"},
			{ID: "2", Title: "Summer Euro Trip", TargetAmount: decimal.NewFromInt(2500), CurrentAmount: decimal.NewFromInt(1100), Emoji: "✈️"},
			{ID: "3", Title: "New Macbook", TargetAmount: decimal.NewFromInt(1200), CurrentAmount: decimal.NewFromInt(200), Emoji: "💻"},
		},
		Transactions: []*entity.Transaction{
			{ID: "1", Title: "Starbucks", Amount: decimal.RequireFromString("6.50"), Category: "Food & Drink", Date: day(2023, 10, 24), Type: entity.TransactionTypeExpense},
			{ID: "2", Title: "Paycheck", Amount: decimal.NewFromInt(1200), Category: "Income", Date: day(2023, 10, 23), Type: entity.TransactionTypeIncome},
			{ID: "3", Title: "Zara Haul", Amount: decimal.RequireFromString("89.99"), Category: "Shopping", Date: day(2023, 10, 22), Type: entity.TransactionTypeExpense},
			{ID: "4", Title: "Uber", Amount: decimal.RequireFromString("24.50"), Category: "Transport", Date: day(2023, 10, 21), Type: entity.TransactionTypeExpense},
			{ID: "5", Title: "Spotify", Amount: decimal.RequireFromString("10.99"), Category: "Subscription", Date: day(2023, 10, 20), Type: entity.TransactionTypeExpense},
		},
		Challenges: []*entity.Challenge{
			{ID: "1", Title: "No-Spend Weekend", Description: "Spend $0 on non-essentials this weekend.", Difficulty: entity.ChallengeDifficultyMedium, RewardXP: 500, Active: false},
			{ID: "2", Title: "Coffee at Home", Description: "Make your own coffee for 7 days straight.", Difficulty: entity.ChallengeDifficultyEasy, RewardXP: 300, Active: true},
			{ID: "3", Title: "Sell 3 Items", Description: "List 3 items on Depop/Vinted.", Difficulty: entity.ChallengeDifficultyHard, RewardXP: 1000, Active: false},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
