package dto

import "github.com/glowup-wallet/backend/internal/domain/entity"

// ChallengeResponse represents a single challenge in API responses.
type ChallengeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	RewardXP    int    `json:"reward_xp"`
	Active      bool   `json:"active"`
}

// ChallengeListResponse represents the response for listing challenges.
type ChallengeListResponse struct {
	Challenges []ChallengeResponse `json:"challenges"`
}

// ToChallengeResponse converts a domain Challenge entity to a ChallengeResponse DTO.
func ToChallengeResponse(c *entity.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Difficulty:  string(c.Difficulty),
		RewardXP:    c.RewardXP,
		Active:      c.Active,
	}
}

// ToChallengeListResponse converts challenges to a ChallengeListResponse DTO.
func ToChallengeListResponse(challenges []*entity.Challenge) ChallengeListResponse {
	response := ChallengeListResponse{
		Challenges: make([]ChallengeResponse, len(challenges)),
	}
	for i, c := range challenges {
		response.Challenges[i] = ToChallengeResponse(c)
	}
	return response
}
