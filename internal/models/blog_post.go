package models

import "time"

// Blog post lifecycle. A post only reaches StatusPublished through parent
// approval, and editing a published post sends it back to StatusPending.
const (
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusPublished = "published"
)

type BlogPost struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	BookID         *string   `json:"book_id,omitempty"`
	Status         string    `json:"status"`
	ParentApproved bool      `json:"parent_approved"`
	Tags           []string  `json:"tags"`
	Emoji          *string   `json:"emoji,omitempty"`
	DateCreated    time.Time `json:"date_created"`
	DateModified   time.Time `json:"date_modified"`
}

// BlogPostPatch carries a partial update for a post. Nil fields are untouched.
// Status and approval are deliberately absent: they only move through the
// store's publish/approve operations, never through a raw merge.
type BlogPostPatch struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	BookID  *string   `json:"book_id,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Emoji   *string   `json:"emoji,omitempty"`
}
