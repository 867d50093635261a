package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Bookmark
var (
	ErrEmptyBookmarkID     = fmt.Errorf("%w: bookmark ID cannot be empty", ErrValidation)
	ErrEmptyBookmarkUserID = fmt.Errorf("%w: bookmark user ID cannot be empty", ErrValidation)
	ErrEmptyTitle          = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrEmptyLink           = fmt.Errorf("%w: link cannot be empty", ErrValidation)
)

// Bookmark is a saved link owned by exactly one user.
// UserID is fixed at creation; nothing in the application reassigns it.
type Bookmark struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBookmark creates a new Bookmark owned by userID.
// Link is kept as given; any non-empty URI string is accepted.
func NewBookmark(userID uuid.UUID, title, link string, description *string) (*Bookmark, error) {
	now := time.Now().UTC()
	bookmark := &Bookmark{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Link:        link,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := bookmark.Validate(); err != nil {
		return nil, err
	}

	return bookmark, nil
}

// Validate checks if the Bookmark has valid data.
func (b *Bookmark) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBookmarkID
	}

	if b.UserID == uuid.Nil {
		return ErrEmptyBookmarkUserID
	}

	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}

	if strings.TrimSpace(b.Link) == "" {
		return ErrEmptyLink
	}

	return nil
}

// BookmarkPatch carries a partial bookmark update. Nil fields are left unchanged.
type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

// Validate rejects supplied but empty title or link values.
func (p BookmarkPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Link != nil && strings.TrimSpace(*p.Link) == "" {
		return ErrEmptyLink
	}
	return nil
}

// Apply copies the supplied fields onto the bookmark and bumps UpdatedAt.
func (b *Bookmark) Apply(p BookmarkPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Link != nil {
		b.Link = *p.Link
	}
	if p.Description != nil {
		b.Description = p.Description
	}
	b.UpdatedAt = time.Now().UTC()
}
