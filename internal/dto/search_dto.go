package dto

import "readnest/internal/models"

// SearchResult is one mapped candidate from the metadata search, ready to be
// added to the shelf or wishlist, with the raw catalog context kept alongside.
type SearchResult struct {
	Book        models.Book `json:"book"`
	PublishYear int         `json:"publish_year,omitempty"`
	Publisher   string      `json:"publisher,omitempty"`
	Subjects    []string    `json:"subjects,omitempty"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

// DescriptionResponse carries a work's long-form description.
type DescriptionResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}
