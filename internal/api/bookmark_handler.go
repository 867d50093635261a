package api

import (
	"net/http"

	"github.com/phrazzld/bookmark-api/internal/api/shared"
	"github.com/phrazzld/bookmark-api/internal/service"
)

// bookmarkIDParam is the chi path parameter naming the bookmark.
const bookmarkIDParam = "id"

// BookmarkHandler handles bookmark CRUD requests for the authenticated user.
type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// List handles GET /bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserID(w, r)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarkService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookmarksToResponse(bookmarks))
}

// Get handles GET /bookmarks/{id}.
func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, bookmarkID, ok := handleUserIDAndPathUUID(w, r, bookmarkIDParam)
	if !ok {
		return
	}

	bookmark, err := h.bookmarkService.Get(r.Context(), userID, bookmarkID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookmarkToResponse(bookmark))
}

// Create handles POST /bookmarks.
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserID(w, r)
	if !ok {
		return
	}

	var req CreateBookmarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bookmark, err := h.bookmarkService.Create(r.Context(), userID, req.Title, req.Link, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, bookmarkToResponse(bookmark))
}

// Update handles PATCH /bookmarks/{id}.
func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, bookmarkID, ok := handleUserIDAndPathUUID(w, r, bookmarkIDParam)
	if !ok {
		return
	}

	var req UpdateBookmarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bookmark, err := h.bookmarkService.Update(r.Context(), userID, bookmarkID, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookmarkToResponse(bookmark))
}

// Delete handles DELETE /bookmarks/{id}.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, bookmarkID, ok := handleUserIDAndPathUUID(w, r, bookmarkIDParam)
	if !ok {
		return
	}

	if err := h.bookmarkService.Delete(r.Context(), userID, bookmarkID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
