package dto

import (
	"time"

	"readnest/internal/models"
)

// CreateChallengeRequest: payload for a new reading challenge.
type CreateChallengeRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description"`
	Target      int       `json:"target" binding:"required,min=1"`
	Type        string    `json:"type" binding:"required,oneof=books pages genres"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Badge       *string   `json:"badge,omitempty"`
}

func (r CreateChallengeRequest) ToModel() models.ReadingChallenge {
	return models.ReadingChallenge{
		Title:       r.Title,
		Description: r.Description,
		Target:      r.Target,
		Type:        r.Type,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Badge:       r.Badge,
	}
}

type ChallengeListResponse struct {
	Items []models.ReadingChallenge `json:"items"`
	Total int                       `json:"total"`
}
