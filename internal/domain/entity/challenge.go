// Package entity defines the core business entities for the domain layer.
package entity

// ChallengeDifficulty represents how hard a challenge is.
type ChallengeDifficulty string

const (
	ChallengeDifficultyEasy   ChallengeDifficulty = "Easy"
	ChallengeDifficultyMedium ChallengeDifficulty = "Medium"
	ChallengeDifficultyHard   ChallengeDifficulty = "Hard"
)

// IsValid reports whether d is a known difficulty.
func (d ChallengeDifficulty) IsValid() bool {
	switch d {
	case ChallengeDifficultyEasy, ChallengeDifficultyMedium, ChallengeDifficultyHard:
		return true
	}
	return false
}

// Challenge represents a gamified savings task. Active is informational only.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Difficulty  ChallengeDifficulty
	RewardXP    int
	Active      bool
}
