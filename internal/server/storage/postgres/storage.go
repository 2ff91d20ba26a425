// Package postgres opens a PostgreSQL database through the pgx stdlib driver,
// applies the embedded schema and returns it as a sqlstore.Storage.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/pressly/goose/v3"

	"github.com/iudanet/devsocial/internal/server/storage/sqlstore"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// New connects to PostgreSQL using dsn and runs migrations
func New(ctx context.Context, dsn string) (*sqlstore.Storage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := sqlstore.Migrate(ctx, db, goose.DialectPostgres, embedMigrations, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return sqlstore.New(db, "pgx"), nil
}
