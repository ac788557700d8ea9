// Package store holds the in-memory domain state: the bookshelf, wishlist,
// blog posts, poems and reading challenges, plus the active reader profile.
// Stores are explicit objects wired in at startup, not globals, so tests can
// construct isolated instances. Every mutated collection is mirrored to the
// snapshot collaborator; persistence failures are logged and never block a
// mutation.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"readnest/internal/models"
	"readnest/internal/snapshot"
)

const persistTimeout = 3 * time.Second

// ReadingStore is the single owner of the reading-domain collections.
// Mutations report whether the target id was found; an unknown id leaves
// every collection untouched.
type ReadingStore struct {
	mu         sync.RWMutex
	books      []models.Book
	wishlist   []models.Book
	posts      []models.BlogPost
	poems      []models.Poem
	challenges []models.ReadingChallenge

	snapshots snapshot.Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewReadingStore creates an empty store. snapshots may be nil, in which case
// nothing is persisted.
func NewReadingStore(snapshots snapshot.Store, logger *slog.Logger) *ReadingStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadingStore{
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// Load restores every collection from the snapshot store. Missing keys are
// not an error; they just leave the collection empty.
func (s *ReadingStore) Load(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, dst := range map[string]any{
		snapshot.KeyBooks:      &s.books,
		snapshot.KeyWishlist:   &s.wishlist,
		snapshot.KeyBlogPosts:  &s.posts,
		snapshot.KeyPoems:      &s.poems,
		snapshot.KeyChallenges: &s.challenges,
	} {
		if err := s.snapshots.Load(ctx, key, dst); err != nil && err != snapshot.ErrNotFound {
			return err
		}
	}
	return nil
}

// persist mirrors one collection to the snapshot store. Called with the
// store lock held.
func (s *ReadingStore) persist(key string, v any) {
	if s.snapshots == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.snapshots.Save(ctx, key, v); err != nil {
		s.logger.Warn("failed to persist snapshot", "key", key, "error", err)
	}
}

// --- Books ---

// Books returns a copy of the bookshelf.
func (s *ReadingStore) Books() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Book(nil), s.books...)
}

// AddBook appends a book to the shelf, assigning an id and added date when
// absent, and returns the stored book.
func (s *ReadingStore) AddBook(book models.Book) models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if book.DateAdded.IsZero() {
		book.DateAdded = s.now()
	}
	s.books = append(s.books, book)
	s.persist(snapshot.KeyBooks, s.books)
	return book
}

// UpdateBook merges the patch into the book with the given id.
func (s *ReadingStore) UpdateBook(id string, patch models.BookPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID != id {
			continue
		}
		applyBookPatch(&s.books[i], patch)
		s.persist(snapshot.KeyBooks, s.books)
		return true
	}
	return false
}

// DeleteBook removes the book with the given id from the shelf.
func (s *ReadingStore) DeleteBook(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.persist(snapshot.KeyBooks, s.books)
			return true
		}
	}
	return false
}

// Stats derives the aggregate reading statistics from the current shelf.
func (s *ReadingStore) Stats(now time.Time) models.ReadingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return computeStats(s.books, now)
}

// --- Wishlist ---

// Wishlist returns a copy of the wishlist.
func (s *ReadingStore) Wishlist() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Book(nil), s.wishlist...)
}

// AddToWishlist appends a candidate book. Wishlist entries are unread by
// definition, so the read flag is cleared regardless of input.
func (s *ReadingStore) AddToWishlist(book models.Book) models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if book.DateAdded.IsZero() {
		book.DateAdded = s.now()
	}
	book.IsRead = false
	book.DateRead = nil
	s.wishlist = append(s.wishlist, book)
	s.persist(snapshot.KeyWishlist, s.wishlist)
	return book
}

// RemoveFromWishlist drops the entry with the given id.
func (s *ReadingStore) RemoveFromWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == id {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persist(snapshot.KeyWishlist, s.wishlist)
			return true
		}
	}
	return false
}

// MoveToBookshelf moves a wishlist entry onto the shelf, marking it read and
// stamping the finish date. Both collections are untouched when the id is
// not on the wishlist.
func (s *ReadingStore) MoveToBookshelf(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID != id {
			continue
		}
		book := s.wishlist[i]
		s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)

		book.IsRead = true
		finished := s.now()
		book.DateRead = &finished
		s.books = append(s.books, book)

		s.persist(snapshot.KeyWishlist, s.wishlist)
		s.persist(snapshot.KeyBooks, s.books)
		return true
	}
	return false
}

// --- Blog posts ---

// BlogPosts returns a copy of all posts, regardless of status.
func (s *ReadingStore) BlogPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.BlogPost(nil), s.posts...)
}

// PublishedPosts returns only posts a visitor may see.
func (s *ReadingStore) PublishedPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var published []models.BlogPost
	for _, p := range s.posts {
		if p.Status == models.StatusPublished && p.ParentApproved {
			published = append(published, p)
		}
	}
	return published
}

// AddBlogPost stores a new post. New posts start as drafts unless explicitly
// submitted as pending; published status can only be reached via approval.
func (s *ReadingStore) AddBlogPost(post models.BlogPost) models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := s.now()
	post.DateCreated = now
	post.DateModified = now
	post.ParentApproved = false
	if post.Status != models.StatusPending {
		post.Status = models.StatusDraft
	}
	s.posts = append(s.posts, post)
	s.persist(snapshot.KeyBlogPosts, s.posts)
	return post
}

// UpdateBlogPost merges the patch into the post with the given id. Any change
// to title or content revokes a previous approval: the post drops back to
// pending (drafts stay drafts, they were never submitted).
func (s *ReadingStore) UpdateBlogPost(id string, patch models.BlogPostPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		post := &s.posts[i]
		contentChanged := patch.Title != nil || patch.Content != nil
		if patch.Title != nil {
			post.Title = *patch.Title
		}
		if patch.Content != nil {
			post.Content = *patch.Content
		}
		if patch.BookID != nil {
			post.BookID = patch.BookID
		}
		if patch.Tags != nil {
			post.Tags = *patch.Tags
		}
		if patch.Emoji != nil {
			post.Emoji = patch.Emoji
		}
		if contentChanged {
			post.ParentApproved = false
			if post.Status != models.StatusDraft {
				post.Status = models.StatusPending
			}
		}
		post.DateModified = s.now()
		s.persist(snapshot.KeyBlogPosts, s.posts)
		return true
	}
	return false
}

// SubmitBlogPost moves a draft into the approval queue.
func (s *ReadingStore) SubmitBlogPost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Status = models.StatusPending
			s.posts[i].DateModified = s.now()
			s.persist(snapshot.KeyBlogPosts, s.posts)
			return true
		}
	}
	return false
}

// ApproveBlogPost grants parent approval and publishes the post.
func (s *ReadingStore) ApproveBlogPost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ParentApproved = true
			s.posts[i].Status = models.StatusPublished
			s.posts[i].DateModified = s.now()
			s.persist(snapshot.KeyBlogPosts, s.posts)
			return true
		}
	}
	return false
}

// DeleteBlogPost removes the post with the given id.
func (s *ReadingStore) DeleteBlogPost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.persist(snapshot.KeyBlogPosts, s.posts)
			return true
		}
	}
	return false
}

// --- Poems ---

// Poems returns a copy of the poem collection.
func (s *ReadingStore) Poems() []models.Poem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Poem(nil), s.poems...)
}

func (s *ReadingStore) AddPoem(poem models.Poem) models.Poem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if poem.ID == "" {
		poem.ID = uuid.New().String()
	}
	poem.DateCreated = s.now()
	poem.Likes = 0
	s.poems = append(s.poems, poem)
	s.persist(snapshot.KeyPoems, s.poems)
	return poem
}

func (s *ReadingStore) UpdatePoem(id string, patch models.PoemPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.poems {
		if s.poems[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.poems[i].Title = *patch.Title
		}
		if patch.Content != nil {
			s.poems[i].Content = *patch.Content
		}
		if patch.Emoji != nil {
			s.poems[i].Emoji = patch.Emoji
		}
		if patch.Template != nil {
			s.poems[i].Template = patch.Template
		}
		s.persist(snapshot.KeyPoems, s.poems)
		return true
	}
	return false
}

// LikePoem increments the like counter inside the store, so two concurrent
// likes can never lose an update.
func (s *ReadingStore) LikePoem(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.poems {
		if s.poems[i].ID == id {
			s.poems[i].Likes++
			s.persist(snapshot.KeyPoems, s.poems)
			return s.poems[i].Likes, true
		}
	}
	return 0, false
}

func (s *ReadingStore) DeletePoem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.poems {
		if s.poems[i].ID == id {
			s.poems = append(s.poems[:i], s.poems[i+1:]...)
			s.persist(snapshot.KeyPoems, s.poems)
			return true
		}
	}
	return false
}

// --- Challenges ---

// Challenges returns the challenge list with progress derived from the shelf
// at read time.
func (s *ReadingStore) Challenges(now time.Time) []models.ReadingChallenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ReadingChallenge, len(s.challenges))
	for i, c := range s.challenges {
		c.Current = challengeProgress(c, s.books)
		c.Completed = c.Target > 0 && c.Current >= c.Target
		out[i] = c
	}
	return out
}

func (s *ReadingStore) AddChallenge(c models.ReadingChallenge) models.ReadingChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	s.challenges = append(s.challenges, c)
	s.persist(snapshot.KeyChallenges, s.challenges)
	return c
}

func (s *ReadingStore) UpdateChallenge(id string, patch models.ChallengePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.challenges {
		if s.challenges[i].ID != id {
			continue
		}
		c := &s.challenges[i]
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Target != nil {
			c.Target = *patch.Target
		}
		if patch.Type != nil {
			c.Type = *patch.Type
		}
		if patch.StartDate != nil {
			c.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			c.EndDate = *patch.EndDate
		}
		if patch.Badge != nil {
			c.Badge = patch.Badge
		}
		s.persist(snapshot.KeyChallenges, s.challenges)
		return true
	}
	return false
}

func (s *ReadingStore) DeleteChallenge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.challenges {
		if s.challenges[i].ID == id {
			s.challenges = append(s.challenges[:i], s.challenges[i+1:]...)
			s.persist(snapshot.KeyChallenges, s.challenges)
			return true
		}
	}
	return false
}

func applyBookPatch(book *models.Book, patch models.BookPatch) {
	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.Genre != nil {
		book.Genre = *patch.Genre
	}
	if patch.AgeRating != nil {
		book.AgeRating = *patch.AgeRating
	}
	if patch.CoverURL != nil {
		book.CoverURL = patch.CoverURL
	}
	if patch.ISBN != nil {
		book.ISBN = patch.ISBN
	}
	if patch.PageCount != nil {
		book.PageCount = patch.PageCount
	}
	if patch.Rating != nil {
		book.Rating = patch.Rating
	}
	if patch.Description != nil {
		book.Description = patch.Description
	}
	if patch.Notes != nil {
		book.Notes = patch.Notes
	}
	if patch.IsRead != nil {
		book.IsRead = *patch.IsRead
	}
	if patch.DateRead != nil {
		book.DateRead = patch.DateRead
	}
}
