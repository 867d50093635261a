//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/postgres"
	"github.com/phrazzld/bookmark-api/internal/store"
	"github.com/phrazzld/bookmark-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBookmarkStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	newBookmark := func(t *testing.T, owner uuid.UUID, title string) *domain.Bookmark {
		t.Helper()
		b, err := domain.NewBookmark(owner, title, "example.com/"+title, nil)
		require.NoError(t, err)
		return b
	}

	t.Run("list is owner filtered and in insertion order", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			users := postgres.NewPostgresUserStore(tx, nil)
			bookmarks := postgres.NewPostgresBookmarkStore(tx, nil)
			alice := createTestUser(t, users, uniqueEmail())
			bob := createTestUser(t, users, uniqueEmail())

			var want []uuid.UUID
			for _, title := range []string{"c", "a", "b"} {
				b := newBookmark(t, alice.ID, title)
				require.NoError(t, bookmarks.Create(ctx, b))
				want = append(want, b.ID)
			}
			require.NoError(t, bookmarks.Create(ctx, newBookmark(t, bob.ID, "bob")))

			got, err := bookmarks.ListByUser(ctx, alice.ID)
			require.NoError(t, err)
			var ids []uuid.UUID
			for _, b := range got {
				ids = append(ids, b.ID)
				assert.Equal(t, alice.ID, b.UserID)
			}
			assert.Equal(t, want, ids)
		})
	})

	t.Run("empty list is non-nil", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			got, err := postgres.NewPostgresBookmarkStore(tx, nil).ListByUser(ctx, uuid.New())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	})

	t.Run("unknown owner is rejected", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			err := postgres.NewPostgresBookmarkStore(tx, nil).Create(ctx, newBookmark(t, uuid.New(), "x"))
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})

	t.Run("update and delete", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			users := postgres.NewPostgresUserStore(tx, nil)
			bookmarks := postgres.NewPostgresBookmarkStore(tx, nil)
			owner := createTestUser(t, users, uniqueEmail())
			b := newBookmark(t, owner.ID, "title")
			require.NoError(t, bookmarks.Create(ctx, b))

			desc := "described"
			b.Apply(domain.BookmarkPatch{Description: &desc})
			require.NoError(t, bookmarks.Update(ctx, b))

			got, err := bookmarks.GetByID(ctx, b.ID)
			require.NoError(t, err)
			require.NotNil(t, got.Description)
			assert.Equal(t, "described", *got.Description)
			assert.Equal(t, "title", got.Title)

			require.NoError(t, bookmarks.Delete(ctx, b.ID))
			_, err = bookmarks.GetByID(ctx, b.ID)
			assert.ErrorIs(t, err, store.ErrBookmarkNotFound)
			assert.ErrorIs(t, bookmarks.Delete(ctx, b.ID), store.ErrBookmarkNotFound)
			assert.ErrorIs(t, bookmarks.Update(ctx, b), store.ErrBookmarkNotFound)
		})
	})
}
