package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readnest/internal/models"
	"readnest/internal/snapshot"
)

func newTestStore(t *testing.T) (*ReadingStore, *snapshot.MemoryStore) {
	t.Helper()
	snapshots := snapshot.NewMemoryStore()
	return NewReadingStore(snapshots, nil), snapshots
}

func TestAddBook_AssignsIDAndDate(t *testing.T) {
	store, _ := newTestStore(t)

	book := store.AddBook(models.Book{Title: "Wonder", Author: "R.J. Palacio"})

	assert.NotEmpty(t, book.ID)
	assert.False(t, book.DateAdded.IsZero())

	books := store.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "Wonder", books[0].Title)
}

func TestUpdateBook_UnknownID(t *testing.T) {
	store, _ := newTestStore(t)
	store.AddBook(models.Book{Title: "Wonder"})

	ok := store.UpdateBook("no-such-id", models.BookPatch{Title: ptr("Changed")})

	assert.False(t, ok)
	assert.Equal(t, "Wonder", store.Books()[0].Title)
}

func TestUpdateBook_MergesPatch(t *testing.T) {
	store, _ := newTestStore(t)
	book := store.AddBook(models.Book{Title: "Wonder", Genre: "Fiction"})

	ok := store.UpdateBook(book.ID, models.BookPatch{
		Rating: ptr(5),
		Notes:  ptr("Loved it!"),
	})

	require.True(t, ok)
	updated := store.Books()[0]
	assert.Equal(t, "Wonder", updated.Title)
	assert.Equal(t, "Fiction", updated.Genre)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
}

func TestDeleteBook(t *testing.T) {
	store, _ := newTestStore(t)
	book := store.AddBook(models.Book{Title: "Wonder"})

	assert.True(t, store.DeleteBook(book.ID))
	assert.False(t, store.DeleteBook(book.ID))
	assert.Empty(t, store.Books())
}

func TestAddToWishlist_ForcesUnread(t *testing.T) {
	store, _ := newTestStore(t)
	finished := time.Now()

	entry := store.AddToWishlist(models.Book{
		Title:    "The Wild Robot",
		IsRead:   true,
		DateRead: &finished,
	})

	assert.False(t, entry.IsRead)
	assert.Nil(t, entry.DateRead)
}

func TestMoveToBookshelf(t *testing.T) {
	store, _ := newTestStore(t)
	entry := store.AddToWishlist(models.Book{Title: "The Wild Robot"})

	ok := store.MoveToBookshelf(entry.ID)

	require.True(t, ok)
	assert.Empty(t, store.Wishlist())

	books := store.Books()
	require.Len(t, books, 1)
	assert.True(t, books[0].IsRead)
	require.NotNil(t, books[0].DateRead)
}

func TestMoveToBookshelf_UnknownID(t *testing.T) {
	store, _ := newTestStore(t)
	store.AddToWishlist(models.Book{Title: "The Wild Robot"})

	ok := store.MoveToBookshelf("no-such-id")

	assert.False(t, ok)
	assert.Len(t, store.Wishlist(), 1)
	assert.Empty(t, store.Books())
}

func TestAddBlogPost_StartsAsDraft(t *testing.T) {
	store, _ := newTestStore(t)

	post := store.AddBlogPost(models.BlogPost{
		Title:   "My Review",
		Content: "Great book!",
		Status:  models.StatusPublished, // must not stick
	})

	assert.Equal(t, models.StatusDraft, post.Status)
	assert.False(t, post.ParentApproved)
}

func TestAddBlogPost_SubmittedAsPending(t *testing.T) {
	store, _ := newTestStore(t)

	post := store.AddBlogPost(models.BlogPost{
		Title:  "My Review",
		Status: models.StatusPending,
	})

	assert.Equal(t, models.StatusPending, post.Status)
	assert.False(t, post.ParentApproved)
}

func TestApproveBlogPost_Publishes(t *testing.T) {
	store, _ := newTestStore(t)
	post := store.AddBlogPost(models.BlogPost{Title: "My Review", Status: models.StatusPending})

	require.True(t, store.ApproveBlogPost(post.ID))

	published := store.PublishedPosts()
	require.Len(t, published, 1)
	assert.Equal(t, models.StatusPublished, published[0].Status)
	assert.True(t, published[0].ParentApproved)
}

func TestUpdateBlogPost_EditRevokesApproval(t *testing.T) {
	store, _ := newTestStore(t)
	post := store.AddBlogPost(models.BlogPost{Title: "My Review", Status: models.StatusPending})
	require.True(t, store.ApproveBlogPost(post.ID))

	ok := store.UpdateBlogPost(post.ID, models.BlogPostPatch{Content: ptr("Edited!")})

	require.True(t, ok)
	updated := store.BlogPosts()[0]
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.False(t, updated.ParentApproved)
	assert.Empty(t, store.PublishedPosts())
}

func TestUpdateBlogPost_DraftStaysDraftOnEdit(t *testing.T) {
	store, _ := newTestStore(t)
	post := store.AddBlogPost(models.BlogPost{Title: "My Review"})

	require.True(t, store.UpdateBlogPost(post.ID, models.BlogPostPatch{Title: ptr("New Title")}))

	assert.Equal(t, models.StatusDraft, store.BlogPosts()[0].Status)
}

func TestUpdateBlogPost_TagOnlyEditKeepsApproval(t *testing.T) {
	store, _ := newTestStore(t)
	post := store.AddBlogPost(models.BlogPost{Title: "My Review", Status: models.StatusPending})
	require.True(t, store.ApproveBlogPost(post.ID))

	tags := []string{"fantasy", "favorites"}
	require.True(t, store.UpdateBlogPost(post.ID, models.BlogPostPatch{Tags: &tags}))

	updated := store.BlogPosts()[0]
	assert.Equal(t, models.StatusPublished, updated.Status)
	assert.True(t, updated.ParentApproved)
}

func TestSubmitBlogPost(t *testing.T) {
	store, _ := newTestStore(t)
	post := store.AddBlogPost(models.BlogPost{Title: "My Review"})

	require.True(t, store.SubmitBlogPost(post.ID))
	assert.Equal(t, models.StatusPending, store.BlogPosts()[0].Status)

	assert.False(t, store.SubmitBlogPost("no-such-id"))
}

func TestLikePoem_Increments(t *testing.T) {
	store, _ := newTestStore(t)
	poem := store.AddPoem(models.Poem{Title: "Autumn Leaves", Content: "..."})

	likes, ok := store.LikePoem(poem.ID)
	require.True(t, ok)
	assert.Equal(t, 1, likes)

	likes, ok = store.LikePoem(poem.ID)
	require.True(t, ok)
	assert.Equal(t, 2, likes)
}

func TestLikePoem_UnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	likes, ok := store.LikePoem("no-such-id")

	assert.False(t, ok)
	assert.Equal(t, 0, likes)
}

func TestAddPoem_IgnoresIncomingLikes(t *testing.T) {
	store, _ := newTestStore(t)

	poem := store.AddPoem(models.Poem{Title: "Autumn Leaves", Likes: 99})

	assert.Equal(t, 0, poem.Likes)
}

func TestChallenges_DerivedProgress(t *testing.T) {
	store, _ := newTestStore(t)
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	finished := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store.AddBook(models.Book{Title: "a", Genre: "Fantasy", IsRead: true, DateRead: &finished})
	store.AddBook(models.Book{Title: "b", Genre: "Mystery", IsRead: true, DateRead: &finished})

	store.AddChallenge(models.ReadingChallenge{
		Title:     "Read 2 Books",
		Type:      models.ChallengeBooks,
		Target:    2,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	})

	challenges := store.Challenges(now)
	require.Len(t, challenges, 1)
	assert.Equal(t, 2, challenges[0].Current)
	assert.True(t, challenges[0].Completed)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snapshots := snapshot.NewMemoryStore()

	first := NewReadingStore(snapshots, nil)
	book := first.AddBook(models.Book{Title: "Wonder"})
	poem := first.AddPoem(models.Poem{Title: "Autumn Leaves"})
	first.LikePoem(poem.ID)

	second := NewReadingStore(snapshots, nil)
	require.NoError(t, second.Load(context.Background()))

	books := second.Books()
	require.Len(t, books, 1)
	assert.Equal(t, book.ID, books[0].ID)

	poems := second.Poems()
	require.Len(t, poems, 1)
	assert.Equal(t, 1, poems[0].Likes)
}

func TestSeedIfEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	store.SeedIfEmpty()

	assert.NotEmpty(t, store.Books())
	assert.NotEmpty(t, store.Wishlist())
	assert.NotEmpty(t, store.Challenges(time.Now()))

	// a second call must not duplicate the samples
	count := len(store.Books())
	store.SeedIfEmpty()
	assert.Len(t, store.Books(), count)
}
