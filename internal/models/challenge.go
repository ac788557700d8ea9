package models

import "time"

// Challenge types determine how progress is measured.
const (
	ChallengeBooks  = "books"  // number of books finished
	ChallengePages  = "pages"  // pages across finished books
	ChallengeGenres = "genres" // distinct genres among finished books
)

// ReadingChallenge is a time-boxed goal. Current and Completed are derived
// from the bookshelf when the challenge list is read, never stored.
type ReadingChallenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Target      int       `json:"target"`
	Current     int       `json:"current"`
	Type        string    `json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Completed   bool      `json:"completed"`
	Badge       *string   `json:"badge,omitempty"`
}

type ChallengePatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Target      *int       `json:"target,omitempty"`
	Type        *string    `json:"type,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Badge       *string    `json:"badge,omitempty"`
}
