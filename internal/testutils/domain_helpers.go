package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// UserOption customizes a user built by MustCreateUserForTest.
type UserOption func(*domain.User)

// WithUserEmail sets the user's email.
func WithUserEmail(email string) UserOption {
	return func(u *domain.User) { u.Email = email }
}

// WithUserHashedPassword sets the stored password digest.
func WithUserHashedPassword(hash string) UserOption {
	return func(u *domain.User) { u.HashedPassword = hash }
}

// WithUserNames sets the optional display names.
func WithUserNames(first, last string) UserOption {
	return func(u *domain.User) {
		u.FirstName = &first
		u.LastName = &last
	}
}

// MustCreateUserForTest builds a valid user with a unique email.
func MustCreateUserForTest(t *testing.T, opts ...UserOption) *domain.User {
	t.Helper()

	user, err := domain.NewUser(UniqueEmail(), "test-hash")
	require.NoError(t, err, "failed to create test user")

	for _, opt := range opts {
		opt(user)
	}
	require.NoError(t, user.Validate(), "test user options produced an invalid user")
	return user
}

// BookmarkOption customizes a bookmark built by MustCreateBookmarkForTest.
type BookmarkOption func(*domain.Bookmark)

// WithBookmarkTitle sets the bookmark title.
func WithBookmarkTitle(title string) BookmarkOption {
	return func(b *domain.Bookmark) { b.Title = title }
}

// WithBookmarkLink sets the bookmark link.
func WithBookmarkLink(link string) BookmarkOption {
	return func(b *domain.Bookmark) { b.Link = link }
}

// WithBookmarkDescription sets the bookmark description.
func WithBookmarkDescription(description string) BookmarkOption {
	return func(b *domain.Bookmark) { b.Description = &description }
}

// MustCreateBookmarkForTest builds a valid bookmark owned by userID.
func MustCreateBookmarkForTest(t *testing.T, userID uuid.UUID, opts ...BookmarkOption) *domain.Bookmark {
	t.Helper()

	bookmark, err := domain.NewBookmark(userID, "Example", "https://example.com", nil)
	require.NoError(t, err, "failed to create test bookmark")

	for _, opt := range opts {
		opt(bookmark)
	}
	require.NoError(t, bookmark.Validate(), "test bookmark options produced an invalid bookmark")
	return bookmark
}

// UniqueEmail returns an email address that is unique within the test run.
func UniqueEmail() string {
	return "user-" + uuid.NewString() + "@example.com"
}
