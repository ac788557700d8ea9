package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"readnest/internal/models"
)

func readBook(genre string, pages, rating int, finished time.Time) models.Book {
	return models.Book{
		Title:     "some book",
		Genre:     genre,
		PageCount: ptr(pages),
		Rating:    ptr(rating),
		IsRead:    true,
		DateRead:  &finished,
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := computeStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalBooks)
	assert.Equal(t, 0, stats.TotalPages)
	assert.Equal(t, "", stats.FavoriteGenre)
	assert.Equal(t, 0, stats.ReadingStreak)
	assert.Equal(t, 0.0, stats.AverageRating)
}

func TestComputeStats_OnlyReadBooksCount(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	books := []models.Book{
		readBook("Fantasy", 300, 5, now.AddDate(0, 0, -1)),
		{Title: "unread", Genre: "Mystery", PageCount: ptr(999), IsRead: false},
	}

	stats := computeStats(books, now)

	assert.Equal(t, 1, stats.TotalBooks)
	assert.Equal(t, 300, stats.TotalPages)
	assert.Equal(t, "Fantasy", stats.FavoriteGenre)
	assert.Equal(t, 5.0, stats.AverageRating)
}

func TestComputeStats_AverageRating(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	books := []models.Book{
		readBook("Fantasy", 100, 5, now),
		readBook("Fantasy", 100, 4, now),
		readBook("Mystery", 100, 3, now),
	}

	stats := computeStats(books, now)

	assert.InDelta(t, 4.0, stats.AverageRating, 0.0001)
	assert.Equal(t, 300, stats.TotalPages)
}

func TestComputeStats_MonthAndYearCounters(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	books := []models.Book{
		readBook("Fantasy", 100, 4, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)),
		readBook("Fantasy", 100, 4, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
		readBook("Fantasy", 100, 4, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	}

	stats := computeStats(books, now)

	assert.Equal(t, 1, stats.BooksThisMonth)
	assert.Equal(t, 2, stats.BooksThisYear)
}

func TestFavoriteGenre_TieKeepsFirstSeen(t *testing.T) {
	now := time.Now()
	books := []models.Book{
		readBook("Fantasy", 100, 4, now),
		readBook("Mystery", 100, 4, now),
		readBook("Fantasy", 100, 4, now),
		readBook("Mystery", 100, 4, now),
	}

	assert.Equal(t, "Fantasy", favoriteGenre(books))
}

func TestReadingStreak_ConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	books := []models.Book{
		readBook("Fantasy", 100, 4, now),
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -1)),
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -2)),
		// gap at -3
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -4)),
	}

	assert.Equal(t, 3, readingStreak(books, now))
}

func TestReadingStreak_AliveWhenLastFinishWasYesterday(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	books := []models.Book{
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -1)),
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -2)),
	}

	assert.Equal(t, 2, readingStreak(books, now))
}

func TestReadingStreak_BrokenAfterTwoIdleDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	books := []models.Book{
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -2)),
		readBook("Fantasy", 100, 4, now.AddDate(0, 0, -3)),
	}

	assert.Equal(t, 0, readingStreak(books, now))
}

func TestChallengeProgress_Books(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	c := models.ReadingChallenge{Type: models.ChallengeBooks, StartDate: start, EndDate: end}

	books := []models.Book{
		readBook("Fantasy", 100, 4, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		readBook("Mystery", 100, 4, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		// outside the window
		readBook("Fantasy", 100, 4, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		// not finished
		{Title: "unread", Genre: "Fantasy"},
	}

	assert.Equal(t, 2, challengeProgress(c, books))
}

func TestChallengeProgress_Pages(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	c := models.ReadingChallenge{Type: models.ChallengePages, StartDate: start, EndDate: end}

	books := []models.Book{
		readBook("Fantasy", 223, 4, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		readBook("Mystery", 310, 4, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, 533, challengeProgress(c, books))
}

func TestChallengeProgress_DistinctGenres(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	c := models.ReadingChallenge{Type: models.ChallengeGenres, StartDate: start, EndDate: end}

	books := []models.Book{
		readBook("Fantasy", 100, 4, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		readBook("Fantasy", 100, 4, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
		readBook("Mystery", 100, 4, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, 2, challengeProgress(c, books))
}
