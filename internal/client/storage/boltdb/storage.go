package boltdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

// ErrLocked возвращается, когда файл БД держит другой процесс клиента
var ErrLocked = errors.New("local database is locked by another devsocial process")

var bucketSession = []byte("session")

// сколько ждать flock, прежде чем вернуть ErrLocked
var lockTimeout = time.Second

// Storage keeps the client session in a BoltDB file
type Storage struct {
	db *bbolt.DB
}

// DefaultPath returns the database location under the user config directory,
// falling back to the working directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "devsocial-client.db"
	}
	return filepath.Join(dir, "devsocial", "client.db")
}

// New opens (or creates) the database at dbPath
func New(ctx context.Context, dbPath string) (*Storage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create database dir: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: lockTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, dbPath)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database. Повторный вызов ничего не делает
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
