package dto

import (
	"time"

	"readnest/internal/models"
)

// CreateBookRequest: payload for adding a book to the shelf or wishlist.
// Validation happens here at the boundary; the store trusts its input.
type CreateBookRequest struct {
	Title       string     `json:"title" binding:"required,max=300"`
	Author      string     `json:"author" binding:"required,max=200"`
	Genre       string     `json:"genre" binding:"required,max=100"`
	AgeRating   string     `json:"age_rating" binding:"omitempty,max=10"`
	CoverURL    *string    `json:"cover_url,omitempty" binding:"omitempty,url"`
	ISBN        *string    `json:"isbn,omitempty"`
	OpenLibKey  *string    `json:"openlib_key,omitempty"`
	PageCount   *int       `json:"page_count,omitempty" binding:"omitempty,min=1"`
	Rating      *int       `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Description *string    `json:"description,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	IsRead      bool       `json:"is_read"`
	DateRead    *time.Time `json:"date_read,omitempty"`
}

// ToModel maps the request onto the domain book shape.
func (r CreateBookRequest) ToModel() models.Book {
	ageRating := r.AgeRating
	if ageRating == "" {
		ageRating = "8+"
	}
	return models.Book{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		AgeRating:   ageRating,
		CoverURL:    r.CoverURL,
		ISBN:        r.ISBN,
		OpenLibKey:  r.OpenLibKey,
		PageCount:   r.PageCount,
		Rating:      r.Rating,
		Description: r.Description,
		Notes:       r.Notes,
		IsRead:      r.IsRead,
		DateRead:    r.DateRead,
	}
}

// BookListResponse wraps a book collection with its size.
type BookListResponse struct {
	Items []models.Book `json:"items"`
	Total int           `json:"total"`
}
