package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/authz"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// BookmarkService manages bookmarks on behalf of an authenticated requester.
// Every operation takes the requester's ID; ownership is checked with authz.
type BookmarkService interface {
	// List returns the requester's bookmarks in creation order, never nil.
	List(ctx context.Context, requesterID uuid.UUID) ([]*domain.Bookmark, error)

	// Get returns a single bookmark.
	// Returns ErrBookmarkNotFound if it does not exist or belongs to someone else.
	Get(ctx context.Context, requesterID, bookmarkID uuid.UUID) (*domain.Bookmark, error)

	// Create stores a new bookmark owned by the requester.
	Create(
		ctx context.Context,
		requesterID uuid.UUID,
		title, link string,
		description *string,
	) (*domain.Bookmark, error)

	// Update applies the supplied fields of patch.
	// Returns ErrForbidden if the bookmark does not exist or belongs to someone else.
	Update(
		ctx context.Context,
		requesterID, bookmarkID uuid.UUID,
		patch domain.BookmarkPatch,
	) (*domain.Bookmark, error)

	// Delete removes the bookmark permanently.
	// Returns ErrForbidden if the bookmark does not exist or belongs to someone else.
	Delete(ctx context.Context, requesterID, bookmarkID uuid.UUID) error
}

type bookmarkServiceImpl struct {
	bookmarkStore store.BookmarkStore
	logger        *slog.Logger
}

var _ BookmarkService = (*bookmarkServiceImpl)(nil)

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(bookmarkStore store.BookmarkStore, logger *slog.Logger) (BookmarkService, error) {
	if bookmarkStore == nil {
		return nil, domain.NewValidationError("bookmarkStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &bookmarkServiceImpl{
		bookmarkStore: bookmarkStore,
		logger:        logger.With(slog.String("component", "bookmark_service")),
	}, nil
}

// List implements BookmarkService.List
func (s *bookmarkServiceImpl) List(ctx context.Context, requesterID uuid.UUID) ([]*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	bookmarks, err := s.bookmarkStore.ListByUser(ctx, requesterID)
	if err != nil {
		log.Error("failed to list bookmarks",
			slog.String("error", err.Error()),
			slog.String("user_id", requesterID.String()))
		return nil, NewServiceError("bookmark", "list", err)
	}
	if bookmarks == nil {
		bookmarks = []*domain.Bookmark{}
	}

	return bookmarks, nil
}

// Get implements BookmarkService.Get
func (s *bookmarkServiceImpl) Get(
	ctx context.Context,
	requesterID, bookmarkID uuid.UUID,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	bookmark, err := s.bookmarkStore.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return nil, ErrBookmarkNotFound
		}
		log.Error("failed to retrieve bookmark",
			slog.String("error", err.Error()),
			slog.String("bookmark_id", bookmarkID.String()))
		return nil, NewServiceError("bookmark", "get", err)
	}

	if authz.Authorize(bookmark.UserID, requesterID) != authz.Allow {
		log.Debug("bookmark read denied",
			slog.String("bookmark_id", bookmarkID.String()),
			slog.String("requester_id", requesterID.String()))
		return nil, ErrBookmarkNotFound
	}

	return bookmark, nil
}

// Create implements BookmarkService.Create
func (s *bookmarkServiceImpl) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	title, link string,
	description *string,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	bookmark, err := domain.NewBookmark(requesterID, title, link, description)
	if err != nil {
		return nil, err
	}

	if err := s.bookmarkStore.Create(ctx, bookmark); err != nil {
		log.Error("failed to create bookmark",
			slog.String("error", err.Error()),
			slog.String("user_id", requesterID.String()))
		return nil, NewServiceError("bookmark", "create", err)
	}

	log.Debug("bookmark created",
		slog.String("bookmark_id", bookmark.ID.String()),
		slog.String("user_id", requesterID.String()))

	return bookmark, nil
}

// Update implements BookmarkService.Update
func (s *bookmarkServiceImpl) Update(
	ctx context.Context,
	requesterID, bookmarkID uuid.UUID,
	patch domain.BookmarkPatch,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	bookmark, err := s.authorizeMutation(ctx, requesterID, bookmarkID, "update")
	if err != nil {
		return nil, err
	}

	bookmark.Apply(patch)

	if err := s.bookmarkStore.Update(ctx, bookmark); err != nil {
		// Removed between the ownership check and the write.
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return nil, ErrBookmarkNotFound
		}
		log.Error("failed to update bookmark",
			slog.String("error", err.Error()),
			slog.String("bookmark_id", bookmarkID.String()))
		return nil, NewServiceError("bookmark", "update", err)
	}

	return bookmark, nil
}

// Delete implements BookmarkService.Delete
func (s *bookmarkServiceImpl) Delete(ctx context.Context, requesterID, bookmarkID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authorizeMutation(ctx, requesterID, bookmarkID, "delete"); err != nil {
		return err
	}

	if err := s.bookmarkStore.Delete(ctx, bookmarkID); err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return ErrBookmarkNotFound
		}
		log.Error("failed to delete bookmark",
			slog.String("error", err.Error()),
			slog.String("bookmark_id", bookmarkID.String()))
		return NewServiceError("bookmark", "delete", err)
	}

	log.Debug("bookmark deleted", slog.String("bookmark_id", bookmarkID.String()))

	return nil
}

// authorizeMutation loads the bookmark and checks the requester owns it.
// A missing bookmark and a foreign one both yield ErrForbidden.
func (s *bookmarkServiceImpl) authorizeMutation(
	ctx context.Context,
	requesterID, bookmarkID uuid.UUID,
	op string,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	bookmark, err := s.bookmarkStore.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			log.Debug("bookmark mutation denied: not found",
				slog.String("op", op),
				slog.String("bookmark_id", bookmarkID.String()))
			return nil, ErrForbidden
		}
		log.Error("failed to retrieve bookmark",
			slog.String("error", err.Error()),
			slog.String("op", op),
			slog.String("bookmark_id", bookmarkID.String()))
		return nil, NewServiceError("bookmark", op, err)
	}

	if authz.Authorize(bookmark.UserID, requesterID) != authz.Allow {
		log.Debug("bookmark mutation denied: not owner",
			slog.String("op", op),
			slog.String("bookmark_id", bookmarkID.String()),
			slog.String("requester_id", requesterID.String()))
		return nil, ErrForbidden
	}

	return bookmark, nil
}
