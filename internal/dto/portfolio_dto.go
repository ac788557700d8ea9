package dto

import "readnest/internal/models"

// PortfolioResponse is the read-only public view: only approved, published
// writing and the finished bookshelf are ever exposed to visitors.
type PortfolioResponse struct {
	ReaderName string              `json:"reader_name"`
	Stats      models.ReadingStats `json:"stats"`
	Books      []models.Book       `json:"books"`
	Posts      []models.BlogPost   `json:"posts"`
	Poems      []models.Poem       `json:"poems"`
}
