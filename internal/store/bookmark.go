package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
)

// BookmarkStore defines the interface for bookmark data persistence.
// Every method is a single atomic statement; callers that need
// check-then-act semantics do the check themselves.
type BookmarkStore interface {
	// Create saves a new bookmark.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, bookmark *domain.Bookmark) error

	// GetByID retrieves a bookmark by ID regardless of its owner.
	// Returns ErrBookmarkNotFound if the bookmark does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error)

	// ListByUser returns all bookmarks owned by userID in insertion order.
	// Returns an empty, non-nil slice when the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error)

	// Update writes title, link, description and updated_at of an existing bookmark.
	// The owner id is never written.
	// Returns ErrBookmarkNotFound if the bookmark does not exist.
	Update(ctx context.Context, bookmark *domain.Bookmark) error

	// Delete permanently removes a bookmark.
	// Returns ErrBookmarkNotFound if the bookmark does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
