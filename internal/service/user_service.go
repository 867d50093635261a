package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// UserService provides profile operations for the authenticated user.
type UserService interface {
	// GetProfile retrieves the user by ID.
	// Returns ErrUserNotFound if the user no longer exists.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies the supplied fields of patch and returns the updated user.
	// Returns ErrDuplicateCredentials if the new email belongs to another user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.UserPatch) (*domain.User, error)
}

type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, logger *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// GetProfile implements UserService.GetProfile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found", slog.String("user_id", userID.String()))
			return nil, ErrUserNotFound
		}
		log.Error("failed to retrieve user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("user", "get_profile", err)
	}

	return user, nil
}

// UpdateProfile implements UserService.UpdateProfile
// It follows the pattern of getting the full user first, then applying only the
// supplied fields, and finally passing the complete user back to the store.
func (s *userServiceImpl) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return user, nil
	}

	user.Apply(patch)

	if err := s.userStore.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			log.Debug("profile update rejected: email taken", slog.String("user_id", userID.String()))
			return nil, ErrDuplicateCredentials
		case errors.Is(err, store.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("user", "update_profile", err)
	}

	log.Info("user profile updated", slog.String("user_id", userID.String()))

	return user, nil
}
