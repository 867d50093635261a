package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/store"
)

const bookmarkColumns = `id, user_id, title, link, description, created_at, updated_at`

// PostgresBookmarkStore implements the store.BookmarkStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookmarkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookmarkStore creates a new PostgreSQL implementation of the BookmarkStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresBookmarkStore(db store.DBTX, logger *slog.Logger) *PostgresBookmarkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookmarkStore{
		db:     db,
		logger: logger.With(slog.String("component", "bookmark_store")),
	}
}

// Ensure PostgresBookmarkStore implements store.BookmarkStore interface
var _ store.BookmarkStore = (*PostgresBookmarkStore)(nil)

// Create implements store.BookmarkStore.Create
// The position column is assigned by the database and defines list order.
func (s *PostgresBookmarkStore) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := bookmark.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookmarks (`+bookmarkColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bookmark.ID, bookmark.UserID, bookmark.Title, bookmark.Link, bookmark.Description,
		bookmark.CreatedAt, bookmark.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("bookmark insert references unknown user",
				slog.String("user_id", bookmark.UserID.String()))
		}
		return store.NewStoreError("bookmark", "create", "insert failed", MapError(err))
	}

	return nil
}

// GetByID implements store.BookmarkStore.GetByID
func (s *PostgresBookmarkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1`, id)

	b, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBookmarkNotFound
		}
		return nil, store.NewStoreError("bookmark", "get_by_id", "query failed", MapError(err))
	}
	return b, nil
}

// ListByUser implements store.BookmarkStore.ListByUser
func (s *PostgresBookmarkStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, store.NewStoreError("bookmark", "list_by_user", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	bookmarks := []*domain.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, store.NewStoreError("bookmark", "list_by_user", "scan failed", MapError(err))
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("bookmark", "list_by_user", "iteration failed", MapError(err))
	}

	return bookmarks, nil
}

// Update implements store.BookmarkStore.Update
func (s *PostgresBookmarkStore) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	if err := bookmark.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE bookmarks
		 SET title = $2, link = $3, description = $4, updated_at = $5
		 WHERE id = $1`,
		bookmark.ID, bookmark.Title, bookmark.Link, bookmark.Description, bookmark.UpdatedAt,
	)
	if err != nil {
		return store.NewStoreError("bookmark", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrBookmarkNotFound)
}

// Delete implements store.BookmarkStore.Delete
func (s *PostgresBookmarkStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("bookmark", "delete", "delete failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrBookmarkNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*domain.Bookmark, error) {
	var (
		b           domain.Bookmark
		description sql.NullString
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Link, &description, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Description = nullStringPtr(description)
	return &b, nil
}
