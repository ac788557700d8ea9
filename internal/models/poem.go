package models

import "time"

type Poem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Emoji       *string   `json:"emoji,omitempty"`
	Likes       int       `json:"likes"`
	Template    *string   `json:"template,omitempty"`
	DateCreated time.Time `json:"date_created"`
}

// PoemPatch carries a partial update for a poem. Likes are excluded: the like
// counter only moves through the store's atomic increment.
type PoemPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Emoji    *string `json:"emoji,omitempty"`
	Template *string `json:"template,omitempty"`
}
