package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/phrazzld/bookmark-api/internal/platform/postgres"
	"github.com/phrazzld/bookmark-api/internal/service"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	bookmarkStore store.BookmarkStore

	jwtService      auth.JWTService
	hasher          auth.PasswordHasher
	authService     service.AuthService
	userService     service.UserService
	bookmarkService service.BookmarkService
}

// newApplication creates a new application instance with all dependencies initialized.
// The stores are the Postgres implementations backed by db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return newApplicationWithStores(
		cfg,
		logger,
		db,
		postgres.NewPostgresUserStore(db, logger),
		postgres.NewPostgresBookmarkStore(db, logger),
	)
}

// newApplicationWithStores wires services and handlers on top of the given stores.
func newApplicationWithStores(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	userStore store.UserStore,
	bookmarkStore store.BookmarkStore,
) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		userStore:     userStore,
		bookmarkStore: bookmarkStore,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher = auth.NewArgon2Hasher(cfg.Auth)

	app.authService, err = service.NewAuthService(userStore, app.hasher, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.userService, err = service.NewUserService(userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.bookmarkService, err = service.NewBookmarkService(bookmarkStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
