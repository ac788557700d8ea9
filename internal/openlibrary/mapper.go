package openlibrary

import (
	"strings"

	"readnest/internal/models"
)

// maxSubjects caps how many subject tags carry over to a mapped book.
const maxSubjects = 5

// ToBook maps a search result onto the domain book shape, inferring the age
// rating and genre from the subject tags. The result is an unread candidate;
// the caller decides whether it lands on the wishlist or the shelf.
func (c *Client) ToBook(doc Doc) models.Book {
	book := models.Book{
		Title:     doc.Title,
		Author:    "Unknown Author",
		Genre:     SuggestGenre(doc.Subject),
		AgeRating: DetermineAgeRating(doc.Subject),
	}
	if len(doc.AuthorName) > 0 {
		book.Author = doc.AuthorName[0]
	}
	if doc.Key != "" {
		key := doc.Key
		book.OpenLibKey = &key
	}
	if doc.CoverID != 0 {
		cover := c.CoverURLByID(doc.CoverID, "M")
		book.CoverURL = &cover
	}
	if len(doc.ISBN) > 0 {
		isbn := doc.ISBN[0]
		book.ISBN = &isbn
	}
	if doc.NumberOfPagesMedian > 0 {
		pages := doc.NumberOfPagesMedian
		book.PageCount = &pages
	}
	return book
}

// DetermineAgeRating picks an age-rating label from subject keywords,
// defaulting to "8+".
func DetermineAgeRating(subjects []string) string {
	if len(subjects) == 0 {
		return "8+"
	}

	joined := strings.ToLower(strings.Join(subjects, " "))

	switch {
	case strings.Contains(joined, "young adult") || strings.Contains(joined, "teen"):
		return "12+"
	case strings.Contains(joined, "middle grade") || strings.Contains(joined, "children"):
		return "8+"
	case strings.Contains(joined, "picture book") || strings.Contains(joined, "early reader"):
		return "5+"
	}
	return "8+"
}

// SuggestGenre picks a shelf genre from subject keywords, defaulting to
// "Fiction". Order matters: the first matching branch wins.
func SuggestGenre(subjects []string) string {
	if len(subjects) == 0 {
		return "Fiction"
	}

	joined := strings.ToLower(strings.Join(subjects, " "))

	switch {
	case strings.Contains(joined, "fantasy") || strings.Contains(joined, "magic"):
		return "Fantasy"
	case strings.Contains(joined, "mystery") || strings.Contains(joined, "detective"):
		return "Mystery"
	case strings.Contains(joined, "science fiction") || strings.Contains(joined, "sci-fi"):
		return "Science Fiction"
	case strings.Contains(joined, "adventure"):
		return "Adventure"
	case strings.Contains(joined, "historical"):
		return "Historical Fiction"
	case strings.Contains(joined, "biography") || strings.Contains(joined, "autobiography"):
		return "Biography"
	case strings.Contains(joined, "poetry") || strings.Contains(joined, "poems"):
		return "Poetry"
	}
	return "Fiction"
}

// Subjects trims a doc's subject list for display.
func Subjects(doc Doc) []string {
	if len(doc.Subject) <= maxSubjects {
		return doc.Subject
	}
	return doc.Subject[:maxSubjects]
}
