// Package sqlite opens a SQLite database, applies the embedded schema and
// returns it as a sqlstore.Storage.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/devsocial/internal/server/storage/sqlstore"
)

// InMemory - путь для БД в памяти, используется в тестах
const InMemory = ":memory:"

//go:embed migrations/*.sql
var embedMigrations embed.FS

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	// лайки и комментарии удаляются каскадом вместе с постом
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// New opens the SQLite database at dbPath, creating its directory when needed,
// and brings the schema up to date
func New(ctx context.Context, dbPath string) (*sqlstore.Storage, error) {
	if dbPath != InMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Один писатель. Для ":memory:" это обязательно: каждое новое соединение видит пустую БД
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := setup(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return sqlstore.New(db, "sqlite3"), nil
}

func setup(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := sqlstore.Migrate(ctx, db, goose.DialectSQLite3, embedMigrations, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
