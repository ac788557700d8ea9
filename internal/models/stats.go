package models

// ReadingStats is the aggregate view over the bookshelf. It is always derived
// from the current book collection, never persisted.
type ReadingStats struct {
	TotalBooks     int     `json:"total_books"`
	TotalPages     int     `json:"total_pages"`
	FavoriteGenre  string  `json:"favorite_genre"`
	ReadingStreak  int     `json:"reading_streak"`
	AverageRating  float64 `json:"average_rating"`
	BooksThisMonth int     `json:"books_this_month"`
	BooksThisYear  int     `json:"books_this_year"`
}
