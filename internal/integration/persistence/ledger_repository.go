// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/domain/entity"
	"github.com/glowup-wallet/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Load reads all goals, transactions and challenges in their original order.
func (r *ledgerRepository) Load(ctx context.Context) (*entity.Seed, error) {
	db := r.db.WithContext(ctx)

	var goalModels []model.GoalModel
	if err := db.Order("position ASC").Find(&goalModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	var txModels []model.TransactionModel
	if err := db.Order("position ASC").Find(&txModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var challengeModels []model.ChallengeModel
	if err := db.Order("position ASC").Find(&challengeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load challenges: %w", err)
	}

	seed := &entity.Seed{
		Goals:        make([]*entity.Goal, len(goalModels)),
		Transactions: make([]*entity.Transaction, len(txModels)),
		Challenges:   make([]*entity.Challenge, len(challengeModels)),
	}
	for i := range goalModels {
		seed.Goals[i] = goalModels[i].ToEntity()
	}
	for i := range txModels {
		seed.Transactions[i] = txModels[i].ToEntity()
	}
	for i := range challengeModels {
		seed.Challenges[i] = challengeModels[i].ToEntity()
	}

	return seed, nil
}

// SaveSeed stores a whole ledger in one transaction.
func (r *ledgerRepository) SaveSeed(ctx context.Context, seed *entity.Seed) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, g := range seed.Goals {
			if err := tx.Create(model.GoalFromEntity(g, i)).Error; err != nil {
				return fmt.Errorf("failed to store goal %s: %w", g.ID, err)
			}
		}
		for i, t := range seed.Transactions {
			if err := tx.Create(model.TransactionFromEntity(t, i)).Error; err != nil {
				return fmt.Errorf("failed to store transaction %s: %w", t.ID, err)
			}
		}
		for i, c := range seed.Challenges {
			if err := tx.Create(model.ChallengeFromEntity(c, i)).Error; err != nil {
				return fmt.Errorf("failed to store challenge %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// SaveGoal updates an existing goal or inserts a new one at position.
// Amounts only move forward, so an older snapshot never overwrites a newer one.
func (r *ledgerRepository) SaveGoal(ctx context.Context, goal *entity.Goal, position int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.GoalModel
		err := tx.Where("id = ?", goal.ID).First(&existing).Error
		switch {
		case err == nil:
			if goal.CurrentAmount.LessThan(existing.CurrentAmount) {
				return nil
			}
			return tx.Model(&existing).Updates(map[string]any{
				"title":          goal.Title,
				"target_amount":  goal.TargetAmount,
				"current_amount": goal.CurrentAmount,
				"emoji":          goal.Emoji,
				"deadline":       goal.Deadline,
				"updated_at":     time.Now(),
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(model.GoalFromEntity(goal, position)).Error
		default:
			return err
		}
	})
}
