package openlibrary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"readnest/internal/models"
	"readnest/internal/snapshot"
)

// Enricher backfills missing covers, descriptions and catalog keys on stored
// books. It works directly against the snapshot collaborator so it can run as
// a standalone process alongside the API server.
type Enricher struct {
	client    *Client
	snapshots snapshot.Store
	workers   int
	logger    *slog.Logger
}

func NewEnricher(client *Client, snapshots snapshot.Store, workers int, logger *slog.Logger) *Enricher {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{
		client:    client,
		snapshots: snapshots,
		workers:   workers,
		logger:    logger,
	}
}

// Run enriches the bookshelf and the wishlist, returning how many books were
// updated. A book that cannot be matched is left as the reader entered it.
func (e *Enricher) Run(ctx context.Context) (int, error) {
	total := 0
	for _, key := range []string{snapshot.KeyBooks, snapshot.KeyWishlist} {
		n, err := e.enrichCollection(ctx, key)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (e *Enricher) enrichCollection(ctx context.Context, key string) (int, error) {
	var books []models.Book
	if err := e.snapshots.Load(ctx, key, &books); err != nil {
		if err == snapshot.ErrNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("load %s: %w", key, err)
	}

	pool := NewWorkerPool(ctx, e.workers, e.logger)
	pool.Start()

	var mu sync.Mutex
	updated := 0

	for i := range books {
		if !needsEnrichment(books[i]) {
			continue
		}
		idx := i
		pool.Submit(func(taskCtx context.Context) error {
			enriched, changed := e.enrichBook(taskCtx, books[idx])
			if changed {
				mu.Lock()
				books[idx] = enriched
				updated++
				mu.Unlock()
			}
			return nil
		})
	}
	pool.Wait()

	if updated > 0 {
		if err := e.snapshots.Save(ctx, key, books); err != nil {
			return updated, fmt.Errorf("save %s: %w", key, err)
		}
		e.logger.Info("collection enriched", "key", key, "updated", updated)
	}
	return updated, nil
}

func needsEnrichment(b models.Book) bool {
	return b.CoverURL == nil || b.Description == nil || b.OpenLibKey == nil
}

// enrichBook fills the gaps it can. Lookup failures are logged and leave the
// book unchanged; enrichment is always best effort.
func (e *Enricher) enrichBook(ctx context.Context, book models.Book) (models.Book, bool) {
	changed := false

	if book.OpenLibKey == nil {
		doc, ok := e.lookup(ctx, book)
		if !ok {
			return book, false
		}
		if doc.Key != "" {
			key := doc.Key
			book.OpenLibKey = &key
			changed = true
		}
		if book.CoverURL == nil && doc.CoverID != 0 {
			cover := e.client.CoverURLByID(doc.CoverID, "M")
			book.CoverURL = &cover
			changed = true
		}
		if book.ISBN == nil && len(doc.ISBN) > 0 {
			isbn := doc.ISBN[0]
			book.ISBN = &isbn
			changed = true
		}
		if book.PageCount == nil && doc.NumberOfPagesMedian > 0 {
			pages := doc.NumberOfPagesMedian
			book.PageCount = &pages
			changed = true
		}
	}

	if book.CoverURL == nil && book.ISBN != nil {
		cover := e.client.CoverURLByISBN(*book.ISBN, "M")
		book.CoverURL = &cover
		changed = true
	}

	if book.Description == nil && book.OpenLibKey != nil {
		desc, err := e.client.Description(ctx, *book.OpenLibKey)
		if err != nil {
			e.logger.Warn("description lookup failed", "title", book.Title, "error", err)
		} else if desc != "" {
			book.Description = &desc
			changed = true
		}
	}

	return book, changed
}

func (e *Enricher) lookup(ctx context.Context, book models.Book) (Doc, bool) {
	var (
		docs []Doc
		err  error
	)
	if book.ISBN != nil {
		docs, err = e.client.SearchByISBN(ctx, *book.ISBN)
	} else {
		docs, err = e.client.Search(ctx, book.Title+" "+book.Author, 1)
	}
	if err != nil {
		e.logger.Warn("book lookup failed", "title", book.Title, "error", err)
		return Doc{}, false
	}
	if len(docs) == 0 {
		return Doc{}, false
	}
	return docs[0], true
}
