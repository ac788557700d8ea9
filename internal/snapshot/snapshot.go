// Package snapshot persists whole domain collections as JSON blobs under
// fixed keys, mirroring what the web client kept in browser local storage.
package snapshot

import (
	"context"
	"errors"
)

// Storage keys, one per entity type.
const (
	KeyBooks      = "readnest:books"
	KeyWishlist   = "readnest:wishlist"
	KeyBlogPosts  = "readnest:blog_posts"
	KeyPoems      = "readnest:poems"
	KeyChallenges = "readnest:reading_challenges"
	KeySettings   = "readnest:user_settings"
)

// ErrNotFound is returned by Load when no blob exists under the key.
var ErrNotFound = errors.New("snapshot not found")

// Store is a key-value collaborator over JSON-serializable blobs.
type Store interface {
	Save(ctx context.Context, key string, v any) error
	Load(ctx context.Context, key string, dst any) error
	Remove(ctx context.Context, key string) error
}
