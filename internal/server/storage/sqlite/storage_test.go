package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devsocial/internal/server/storage/sqlstore"
)

func TestNew(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		s, err := New(context.Background(), InMemory)
		require.NoError(t, err)
		defer s.Close()

		assert.NoError(t, s.Ping(context.Background()))
	})

	t.Run("file survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "devsocial.db")

		s, err := New(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, s.Close())

		// Повторный запуск миграций на существующей БД не должен падать
		s, err = New(context.Background(), path)
		require.NoError(t, err)
		defer s.Close()

		var tables int
		err = s.DB().GetContext(context.Background(), &tables,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'posts', 'post_likes', 'post_comments')`)
		require.NoError(t, err)
		assert.Equal(t, 4, tables)
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "nested", "devsocial.db")

		s, err := New(context.Background(), path)
		require.NoError(t, err)
		defer s.Close()

		assert.FileExists(t, path)
	})

	t.Run("path is a directory", func(t *testing.T) {
		_, err := New(context.Background(), t.TempDir())
		assert.Error(t, err)
	})

	t.Run("foreign keys enabled", func(t *testing.T) {
		s, err := New(context.Background(), InMemory)
		require.NoError(t, err)
		defer s.Close()

		var fk int
		require.NoError(t, s.DB().GetContext(context.Background(), &fk, `PRAGMA foreign_keys`))
		assert.Equal(t, 1, fk)
	})

	t.Run("migrations already applied", func(t *testing.T) {
		s, err := New(context.Background(), InMemory)
		require.NoError(t, err)
		defer s.Close()

		applied, err := sqlstore.Migrate(context.Background(), s.DB().DB, goose.DialectSQLite3, embedMigrations, "migrations")
		require.NoError(t, err)
		assert.Empty(t, applied)
	})

	t.Run("missing migrations dir", func(t *testing.T) {
		s, err := New(context.Background(), InMemory)
		require.NoError(t, err)
		defer s.Close()

		_, err = sqlstore.Migrate(context.Background(), s.DB().DB, goose.DialectSQLite3, embedMigrations, "nope")
		assert.Error(t, err)
	})
}
