package store

import (
	"time"

	"readnest/internal/models"
	"readnest/internal/snapshot"
)

func ptr[T any](v T) *T { return &v }

// SeedIfEmpty installs the demo collections when nothing was restored from
// the snapshot store, so a fresh install starts with something on the shelf.
func (s *ReadingStore) SeedIfEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.books) > 0 || len(s.wishlist) > 0 || len(s.challenges) > 0 {
		return
	}

	s.books = []models.Book{
		{
			ID:        "1",
			Title:     "Harry Potter and the Sorcerer's Stone",
			Author:    "J.K. Rowling",
			Genre:     "Fantasy",
			AgeRating: "8+",
			DateAdded: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			DateRead:  ptr(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
			Rating:    ptr(5),
			IsRead:    true,
			PageCount: ptr(309),
			Notes:     ptr("Amazing magical adventure!"),
		},
		{
			ID:        "2",
			Title:     "Wonder",
			Author:    "R.J. Palacio",
			Genre:     "Fiction",
			AgeRating: "8+",
			DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			DateRead:  ptr(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
			Rating:    ptr(4),
			IsRead:    true,
			PageCount: ptr(315),
			Notes:     ptr("Very touching story about kindness."),
		},
	}

	s.wishlist = []models.Book{
		{
			ID:        "3",
			Title:     "The Wild Robot",
			Author:    "Peter Brown",
			Genre:     "Adventure",
			AgeRating: "8+",
			DateAdded: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			IsRead:    false,
			PageCount: ptr(279),
		},
	}

	s.challenges = []models.ReadingChallenge{
		{
			ID:          "1",
			Title:       "Read 20 Books This Year",
			Description: "Challenge yourself to read 20 books before the year ends!",
			Target:      20,
			Type:        models.ChallengeBooks,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Badge:       ptr("📚"),
		},
	}

	s.persist(snapshot.KeyBooks, s.books)
	s.persist(snapshot.KeyWishlist, s.wishlist)
	s.persist(snapshot.KeyChallenges, s.challenges)
}

// DefaultProfile is the demo reader installed at startup when no profile has
// been configured yet.
func DefaultProfile() *models.Profile {
	return &models.Profile{
		ID:       "1",
		Name:     "Isabella",
		Age:      10,
		IsParent: false,
		Settings: models.UserSettings{
			Theme:         models.ThemeColorful,
			ReadingGoal:   20,
			Notifications: true,
			ParentalControls: models.ParentalControls{
				RequireApproval: true,
				ContentFilter:   true,
				AllowedGenres:   []string{"Fiction", "Fantasy", "Adventure", "Mystery", "Science Fiction"},
			},
		},
	}
}
