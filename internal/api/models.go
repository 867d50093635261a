package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
)

// AuthRequest defines the payload for the signup and signin endpoints.
// No password strength policy is applied; any non-empty password is accepted.
type AuthRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for authentication endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UpdateUserRequest defines the payload for PATCH /users. Omitted fields are unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=255"`
}

// Patch converts the request into a domain patch.
func (r UpdateUserRequest) Patch() domain.UserPatch {
	return domain.UserPatch{Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

// UserResponse is the public view of a user. The password hash is never included.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBookmarkRequest defines the payload for POST /bookmarks.
// The link is stored as given; it is not required to carry a scheme.
type CreateBookmarkRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Link        string  `json:"link"        validate:"required"`
	Description *string `json:"description"`
}

// UpdateBookmarkRequest defines the payload for PATCH /bookmarks/{id}. Omitted fields are unchanged.
type UpdateBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

// Patch converts the request into a domain patch.
func (r UpdateBookmarkRequest) Patch() domain.BookmarkPatch {
	return domain.BookmarkPatch{Title: r.Title, Link: r.Link, Description: r.Description}
}

// BookmarkResponse is the public view of a bookmark.
type BookmarkResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func bookmarkToResponse(b *domain.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func bookmarksToResponse(list []*domain.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(list))
	for _, b := range list {
		out = append(out, bookmarkToResponse(b))
	}
	return out
}
