package model

import (
	"time"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// ChallengeModel represents the challenges table in the database.
type ChallengeModel struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	Position    int       `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Difficulty  string    `gorm:"type:varchar(10);not null"`
	RewardXP    int       `gorm:"column:reward_xp;not null;default:0"`
	Active      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ChallengeModel.
func (ChallengeModel) TableName() string {
	return "challenges"
}

// ToEntity converts a ChallengeModel to a domain Challenge entity.
func (m *ChallengeModel) ToEntity() *entity.Challenge {
	return &entity.Challenge{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Difficulty:  entity.ChallengeDifficulty(m.Difficulty),
		RewardXP:    m.RewardXP,
		Active:      m.Active,
	}
}

// ChallengeFromEntity creates a ChallengeModel from a domain Challenge entity.
func ChallengeFromEntity(c *entity.Challenge, position int) *ChallengeModel {
	return &ChallengeModel{
		ID:          c.ID,
		Position:    position,
		Title:       c.Title,
		Description: c.Description,
		Difficulty:  string(c.Difficulty),
		RewardXP:    c.RewardXP,
		Active:      c.Active,
	}
}

// AllModels lists every model for auto-migration.
func AllModels() []any {
	return []any{&GoalModel{}, &TransactionModel{}, &ChallengeModel{}}
}
