package postgres

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_bookmarks.sql"}, names)
}

func TestMigrate_RejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	err := Migrate(context.Background(), nil, nil, "drop-everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration command")
}
