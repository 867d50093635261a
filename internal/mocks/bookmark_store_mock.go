package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockBookmarkStore is a mock of store.BookmarkStore for use with testify/mock
type TestifyMockBookmarkStore struct {
	mock.Mock
}

var _ store.BookmarkStore = (*TestifyMockBookmarkStore)(nil)

// Create is a mock implementation of store.BookmarkStore.Create
func (m *TestifyMockBookmarkStore) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

// GetByID is a mock implementation of store.BookmarkStore.GetByID
func (m *TestifyMockBookmarkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*domain.Bookmark); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByUser is a mock implementation of store.BookmarkStore.ListByUser
func (m *TestifyMockBookmarkStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]*domain.Bookmark); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.BookmarkStore.Update
func (m *TestifyMockBookmarkStore) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

// Delete is a mock implementation of store.BookmarkStore.Delete
func (m *TestifyMockBookmarkStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
