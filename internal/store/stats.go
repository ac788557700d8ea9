package store

import (
	"time"

	"readnest/internal/models"
)

// computeStats reduces the book collection to its aggregate view. Pure
// function of the books and the supplied clock; only read books count.
func computeStats(books []models.Book, now time.Time) models.ReadingStats {
	var read []models.Book
	for _, b := range books {
		if b.IsRead {
			read = append(read, b)
		}
	}

	stats := models.ReadingStats{
		TotalBooks:    len(read),
		FavoriteGenre: favoriteGenre(read),
		ReadingStreak: readingStreak(read, now),
	}

	var ratingSum int
	for _, b := range read {
		if b.PageCount != nil {
			stats.TotalPages += *b.PageCount
		}
		if b.Rating != nil {
			ratingSum += *b.Rating
		}
		if b.DateRead != nil && b.DateRead.Year() == now.Year() {
			stats.BooksThisYear++
			if b.DateRead.Month() == now.Month() {
				stats.BooksThisMonth++
			}
		}
	}
	if len(read) > 0 {
		stats.AverageRating = float64(ratingSum) / float64(len(read))
	}

	return stats
}

// favoriteGenre is the most frequent genre among read books. Ties keep the
// genre encountered first in collection order; empty input yields "".
func favoriteGenre(read []models.Book) string {
	counts := make(map[string]int)
	var order []string
	for _, b := range read {
		if counts[b.Genre] == 0 {
			order = append(order, b.Genre)
		}
		counts[b.Genre]++
	}

	favorite := ""
	best := 0
	for _, genre := range order {
		if counts[genre] > best {
			favorite = genre
			best = counts[genre]
		}
	}
	return favorite
}

// readingStreak counts consecutive calendar days with at least one finished
// book, walking backwards from today. A streak is still alive if the most
// recent finish was yesterday.
func readingStreak(read []models.Book, now time.Time) int {
	days := make(map[string]bool)
	for _, b := range read {
		if b.DateRead != nil {
			days[b.DateRead.Format("2006-01-02")] = true
		}
	}
	if len(days) == 0 {
		return 0
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// challengeProgress derives a challenge's current progress from the read
// books finished inside its window.
func challengeProgress(c models.ReadingChallenge, books []models.Book) int {
	genres := make(map[string]bool)
	pages := 0
	count := 0
	for _, b := range books {
		if !b.IsRead || b.DateRead == nil {
			continue
		}
		if b.DateRead.Before(c.StartDate) || b.DateRead.After(c.EndDate) {
			continue
		}
		count++
		genres[b.Genre] = true
		if b.PageCount != nil {
			pages += *b.PageCount
		}
	}

	switch c.Type {
	case models.ChallengePages:
		return pages
	case models.ChallengeGenres:
		return len(genres)
	default:
		return count
	}
}
