// Package sqlstore implements storage.UserStorage and storage.PostStorage on top of
// database/sql. Queries are written with '?' placeholders and rebound for the
// driver in use, so the same code serves SQLite and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iudanet/devsocial/internal/server/storage"
)

// Storage represents SQL storage implementation
type Storage struct {
	db *sqlx.DB
}

var (
	_ storage.UserStorage = (*Storage)(nil)
	_ storage.PostStorage = (*Storage)(nil)
)

// New wraps an opened and migrated database.
// driverName controls placeholder rebinding ("sqlite3", "pgx", ...)
func New(db *sql.DB, driverName string) *Storage {
	return &Storage{db: sqlx.NewDb(db, driverName)}
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sqlx.DB {
	return s.db
}

// inTx выполняет fn в транзакции, откатывая ее при ошибке
func (s *Storage) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// isNoRows проверяет, что запрос не вернул строк
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
