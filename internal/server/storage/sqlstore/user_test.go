package sqlstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/storage"
)

func TestStorage_CreateUser(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Avatar:       "//www.gravatar.com/avatar/abc",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	t.Run("get by email", func(t *testing.T) {
		got, err := s.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Name, got.Name)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
		assert.Equal(t, user.Avatar, got.Avatar)
		assert.WithinDuration(t, user.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := *user
		dup.ID = uuid.New().String()
		err := s.CreateUser(ctx, &dup)
		assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)

		_, err = s.GetUserByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestStorage_CreateUser_Concurrent(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dups    int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.CreateUser(ctx, &models.User{
				ID:           uuid.New().String(),
				Name:         "Racer",
				Email:        "race@example.com",
				PasswordHash: "hash",
				CreatedAt:    time.Now().UTC(),
			})

			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				created++
			case storage.ErrUserAlreadyExists:
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, dups)
}
