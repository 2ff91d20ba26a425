package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/storage"
)

// Интеграционный тест: запускается только при заданном TEST_POSTGRES_DSN
func TestNew_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()

	s, err := New(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping(ctx))

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         "Alice",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.ErrorIs(t, s.CreateUser(ctx, user), storage.ErrUserAlreadyExists)

	post := &models.Post{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Text:      "hello from postgres",
		Name:      user.Name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreatePost(ctx, post))

	likes, err := s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: user.ID, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	_, err = s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: user.ID, CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, storage.ErrLikeExists)

	require.NoError(t, s.DeletePost(ctx, post.ID))
	_, err = s.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestNew_BadDSN(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
