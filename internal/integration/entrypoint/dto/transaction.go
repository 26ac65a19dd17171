// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Type     string          `json:"type"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       t.ID,
		Title:    t.Title,
		Amount:   t.Amount,
		Category: t.Category,
		Date:     t.Date.Format(dateLayout),
		Type:     string(t.Type),
	}
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
	}
	for i, t := range transactions {
		response.Transactions[i] = ToTransactionResponse(t)
	}
	return response
}
