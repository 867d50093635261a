package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewBookmark(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("valid bookmark", func(t *testing.T) {
		t.Parallel()
		b, err := NewBookmark(userID, "Google", "google.com", nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, b.ID)
		assert.Equal(t, userID, b.UserID)
		assert.Equal(t, "Google", b.Title)
		assert.Equal(t, "google.com", b.Link)
		assert.Nil(t, b.Description)
		assert.False(t, b.CreatedAt.IsZero())
		assert.Equal(t, b.CreatedAt, b.UpdatedAt)
	})

	t.Run("with description", func(t *testing.T) {
		t.Parallel()
		b, err := NewBookmark(userID, "Go", "https://go.dev", strPtr("The Go site"))
		require.NoError(t, err)
		require.NotNil(t, b.Description)
		assert.Equal(t, "The Go site", *b.Description)
	})

	tests := []struct {
		name    string
		userID  uuid.UUID
		title   string
		link    string
		wantErr error
	}{
		{"missing owner", uuid.Nil, "t", "l", ErrEmptyBookmarkUserID},
		{"empty title", userID, "", "l", ErrEmptyTitle},
		{"blank title", userID, "  ", "l", ErrEmptyTitle},
		{"empty link", userID, "t", "", ErrEmptyLink},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBookmark(tc.userID, tc.title, tc.link, nil)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestBookmarkApply(t *testing.T) {
	t.Parallel()
	b, err := NewBookmark(uuid.New(), "Google", "google.com", nil)
	require.NoError(t, err)
	owner := b.UserID

	b.Apply(BookmarkPatch{Description: strPtr("From Google.com's website")})

	assert.Equal(t, "Google", b.Title)
	assert.Equal(t, "google.com", b.Link)
	require.NotNil(t, b.Description)
	assert.Equal(t, "From Google.com's website", *b.Description)
	assert.Equal(t, owner, b.UserID)
	assert.False(t, b.UpdatedAt.Before(b.CreatedAt))
}

func TestBookmarkPatchValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, BookmarkPatch{}.Validate())
	assert.NoError(t, BookmarkPatch{Description: strPtr("")}.Validate())
	assert.ErrorIs(t, BookmarkPatch{Title: strPtr("")}.Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, BookmarkPatch{Link: strPtr(" ")}.Validate(), ErrEmptyLink)
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := NewValidationError("id", "has invalid format", ErrInvalidID)
	assert.Equal(t, "id has invalid format", err.Error())
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, err, ErrValidation)

	bare := NewValidationError("title", "is required", nil)
	assert.ErrorIs(t, bare, ErrValidation)
}
