package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// Token is the credential handed back after a successful signup or signin.
type Token struct {
	AccessToken string `json:"access_token"`
}

// AuthService registers users and exchanges credentials for access tokens.
type AuthService interface {
	// Signup creates a user with the given email and password and returns a token for it.
	// Returns ErrDuplicateCredentials if the email is already registered.
	Signup(ctx context.Context, email, password string) (*Token, error)

	// Signin checks the credentials and returns a fresh token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Signin(ctx context.Context, email, password string) (*Token, error)
}

type authServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

var _ AuthService = (*authServiceImpl)(nil)

// NewAuthService creates a new AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) (AuthService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_service")),
	}, nil
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrEmptyEmail
	}
	if password == "" {
		return domain.ErrEmptyPassword
	}
	return nil
}

// Signup implements AuthService.Signup
func (s *authServiceImpl) Signup(ctx context.Context, email, password string) (*Token, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signup", err)
	}

	user, err := domain.NewUser(email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("signup rejected: email already registered")
			return nil, ErrDuplicateCredentials
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signup", err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))

	return s.issue(ctx, user, "signup")
}

// Signin implements AuthService.Signin
func (s *authServiceImpl) Signin(ctx context.Context, email, password string) (*Token, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("signin rejected: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for signin", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signin", err)
	}

	if !s.hasher.Verify(user.HashedPassword, password) {
		log.Debug("signin rejected: password mismatch", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	log.Debug("user signed in", slog.String("user_id", user.ID.String()))

	return s.issue(ctx, user, "signin")
}

func (s *authServiceImpl) issue(ctx context.Context, user *domain.User, op string) (*Token, error) {
	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("auth", op, err)
	}
	return &Token{AccessToken: token}, nil
}
