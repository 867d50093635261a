package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// MemoryUserStore is a concurrency-safe in-memory store.UserStore.
// Returned users are copies; callers must Update to persist changes.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create implements store.UserStore.
func (s *MemoryUserStore) Create(_ context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return store.ErrEmailExists
	}
	if _, exists := s.byID[user.ID]; exists {
		return store.ErrDuplicate
	}

	s.byID[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return nil
}

// GetByID implements store.UserStore.
func (s *MemoryUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail implements store.UserStore.
func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u := s.byID[id]
	return &u, nil
}

// Update implements store.UserStore. The stored password hash is kept.
func (s *MemoryUserStore) Update(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	if owner, taken := s.byEmail[user.Email]; taken && owner != user.ID {
		return store.ErrEmailExists
	}

	delete(s.byEmail, current.Email)
	current.Email = user.Email
	current.FirstName = user.FirstName
	current.LastName = user.LastName
	current.UpdatedAt = user.UpdatedAt

	s.byID[user.ID] = current
	s.byEmail[current.Email] = user.ID
	return nil
}

// MemoryBookmarkStore is a concurrency-safe in-memory store.BookmarkStore
// that lists bookmarks in insertion order.
type MemoryBookmarkStore struct {
	mu    sync.RWMutex
	users store.UserStore
	byID  map[uuid.UUID]domain.Bookmark
	order []uuid.UUID
}

var _ store.BookmarkStore = (*MemoryBookmarkStore)(nil)

// NewMemoryBookmarkStore creates an empty MemoryBookmarkStore. When users is
// non-nil, Create rejects bookmarks whose owner it does not know.
func NewMemoryBookmarkStore(users store.UserStore) *MemoryBookmarkStore {
	return &MemoryBookmarkStore{
		users: users,
		byID:  make(map[uuid.UUID]domain.Bookmark),
	}
}

// Create implements store.BookmarkStore.
func (s *MemoryBookmarkStore) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	if err := bookmark.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if s.users != nil {
		if _, err := s.users.GetByID(ctx, bookmark.UserID); err != nil {
			return fmt.Errorf("%w: owner: %w", store.ErrInvalidEntity, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[bookmark.ID]; exists {
		return store.ErrDuplicate
	}
	s.byID[bookmark.ID] = *bookmark
	s.order = append(s.order, bookmark.ID)
	return nil
}

// GetByID implements store.BookmarkStore.
func (s *MemoryBookmarkStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, store.ErrBookmarkNotFound
	}
	return &b, nil
}

// ListByUser implements store.BookmarkStore.
func (s *MemoryBookmarkStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bookmark, 0)
	for _, id := range s.order {
		if b := s.byID[id]; b.UserID == userID {
			out = append(out, &b)
		}
	}
	return out, nil
}

// Update implements store.BookmarkStore. The owner is never changed.
func (s *MemoryBookmarkStore) Update(_ context.Context, bookmark *domain.Bookmark) error {
	if err := bookmark.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[bookmark.ID]
	if !ok {
		return store.ErrBookmarkNotFound
	}
	current.Title = bookmark.Title
	current.Link = bookmark.Link
	current.Description = bookmark.Description
	current.UpdatedAt = bookmark.UpdatedAt
	s.byID[bookmark.ID] = current
	return nil
}

// Delete implements store.BookmarkStore.
func (s *MemoryBookmarkStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return store.ErrBookmarkNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
