package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	Position  int             `gorm:"not null;index"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Date      time.Time       `gorm:"type:date;not null"`
	Type      string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:       m.ID,
		Title:    m.Title,
		Amount:   m.Amount,
		Category: m.Category,
		Date:     m.Date,
		Type:     entity.TransactionType(m.Type),
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction, position int) *TransactionModel {
	return &TransactionModel{
		ID:       tx.ID,
		Position: position,
		Title:    tx.Title,
		Amount:   tx.Amount,
		Category: tx.Category,
		Date:     tx.Date,
		Type:     string(tx.Type),
	}
}
