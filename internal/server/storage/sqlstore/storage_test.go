package sqlstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/storage/sqlite"
	"github.com/iudanet/devsocial/internal/server/storage/sqlstore"
)

// setupTestStorage creates in-memory SQLite storage for testing
func setupTestStorage(t *testing.T) (*sqlstore.Storage, func()) {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		s.Close()
	}

	return s, cleanup
}

var userSeq int

func createTestUser(t *testing.T, s *sqlstore.Storage, name string) *models.User {
	t.Helper()

	userSeq++
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        fmt.Sprintf("user%d@example.com", userSeq),
		PasswordHash: "$2a$10$hash",
		Avatar:       "//www.gravatar.com/avatar/x",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))

	return user
}

func createTestPost(t *testing.T, s *sqlstore.Storage, author *models.User, text string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:        uuid.New().String(),
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: createdAt,
	}
	require.NoError(t, s.CreatePost(context.Background(), post))

	return post
}

func TestStorage_Ping(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))
	assert.NotNil(t, s.DB())
}
