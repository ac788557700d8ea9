package models

import "time"

// Book is a single entry on the bookshelf or the wishlist. A book lives in
// exactly one of the two collections: wishlist entries always have IsRead=false,
// and moving one to the shelf flips the flag and stamps DateRead.
type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Genre       string     `json:"genre"`
	AgeRating   string     `json:"age_rating"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	ISBN        *string    `json:"isbn,omitempty"`
	OpenLibKey  *string    `json:"openlib_key,omitempty"`
	PageCount   *int       `json:"page_count,omitempty"`
	Rating      *int       `json:"rating,omitempty"` // 1-5, only meaningful once read
	Description *string    `json:"description,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	IsRead      bool       `json:"is_read"`
	DateAdded   time.Time  `json:"date_added"`
	DateRead    *time.Time `json:"date_read,omitempty"`
}

// BookPatch carries a partial update for a book. Nil fields are left untouched.
type BookPatch struct {
	Title       *string    `json:"title,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Genre       *string    `json:"genre,omitempty"`
	AgeRating   *string    `json:"age_rating,omitempty"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	ISBN        *string    `json:"isbn,omitempty"`
	PageCount   *int       `json:"page_count,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	Description *string    `json:"description,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	IsRead      *bool      `json:"is_read,omitempty"`
	DateRead    *time.Time `json:"date_read,omitempty"`
}
