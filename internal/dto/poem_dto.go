package dto

import "readnest/internal/models"

// CreatePoemRequest: payload for a new poem.
type CreatePoemRequest struct {
	Title    string  `json:"title" binding:"required,max=200"`
	Content  string  `json:"content" binding:"required"`
	Emoji    *string `json:"emoji,omitempty"`
	Template *string `json:"template,omitempty"`
}

func (r CreatePoemRequest) ToModel() models.Poem {
	return models.Poem{
		Title:    r.Title,
		Content:  r.Content,
		Emoji:    r.Emoji,
		Template: r.Template,
	}
}

type PoemListResponse struct {
	Items []models.Poem `json:"items"`
	Total int           `json:"total"`
}

// LikeResponse reports the counter after an atomic like.
type LikeResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}
