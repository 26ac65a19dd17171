package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// CategoryShare is one slice of the expense breakdown.
type CategoryShare struct {
	Category         string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
}

// CategoryBreakdown sums expense amounts per category. Income is ignored and
// an empty input yields an empty map.
func CategoryBreakdown(transactions []*entity.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		breakdown[tx.Category] = breakdown[tx.Category].Add(tx.Amount)
	}
	return breakdown
}

// BreakdownItems returns the expense breakdown ordered by the first
// appearance of each category, with each category's share of total expenses.
func BreakdownItems(transactions []*entity.Transaction) []CategoryShare {
	index := make(map[string]int)
	items := make([]CategoryShare, 0)
	total := decimal.Zero

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(items)
			index[tx.Category] = i
			items = append(items, CategoryShare{Category: tx.Category})
		}
		items[i].Amount = items[i].Amount.Add(tx.Amount)
		items[i].TransactionCount++
		total = total.Add(tx.Amount)
	}

	if total.IsZero() {
		return items
	}
	for i := range items {
		pct := items[i].Amount.Mul(hundred).Div(total)
		items[i].Percentage, _ = pct.Round(2).Float64()
	}
	return items
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(transactions []*entity.Transaction) decimal.Decimal {
	return totalByType(transactions, entity.TransactionTypeExpense)
}

// TotalIncome sums all income amounts.
func TotalIncome(transactions []*entity.Transaction) decimal.Decimal {
	return totalByType(transactions, entity.TransactionTypeIncome)
}

func totalByType(transactions []*entity.Transaction, t entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
