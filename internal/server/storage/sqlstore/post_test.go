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

func TestStorage_ListPosts(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		posts, err := s.ListPosts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	alice := createTestUser(t, s, "Alice")
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	older := createTestPost(t, s, alice, "first", base)
	newer := createTestPost(t, s, alice, "second", base.Add(time.Minute))

	t.Run("newest first with empty arrays", func(t *testing.T) {
		posts, err := s.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		assert.Equal(t, newer.ID, posts[0].ID)
		assert.Equal(t, older.ID, posts[1].ID)

		for _, p := range posts {
			assert.NotNil(t, p.Likes)
			assert.NotNil(t, p.Comments)
			assert.Empty(t, p.Likes)
			assert.Empty(t, p.Comments)
		}
	})

	t.Run("likes and comments grouped by post", func(t *testing.T) {
		bob := createTestUser(t, s, "Bob")

		_, err := s.AddLike(ctx, &models.Like{PostID: older.ID, UserID: bob.ID, CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
		_, err = s.AddComment(ctx, &models.Comment{
			ID:        uuid.New().String(),
			PostID:    newer.ID,
			UserID:    bob.ID,
			Text:      "nice",
			Name:      bob.Name,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		posts, err := s.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		assert.Empty(t, posts[0].Likes)
		require.Len(t, posts[0].Comments, 1)
		assert.Equal(t, "nice", posts[0].Comments[0].Text)

		require.Len(t, posts[1].Likes, 1)
		assert.Equal(t, bob.ID, posts[1].Likes[0].UserID)
		assert.Empty(t, posts[1].Comments)
	})
}

func TestStorage_GetPost(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	alice := createTestUser(t, s, "Alice")
	post := createTestPost(t, s, alice, "hello", time.Now().UTC())

	got, err := s.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, alice.ID, got.UserID)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "Alice", got.Name)
	assert.NotNil(t, got.Likes)
	assert.NotNil(t, got.Comments)

	_, err = s.GetPost(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestStorage_DeletePost(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	alice := createTestUser(t, s, "Alice")
	post := createTestPost(t, s, alice, "bye", time.Now().UTC())

	_, err := s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: alice.ID, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	_, err = s.AddComment(ctx, &models.Comment{
		ID: uuid.New().String(), PostID: post.ID, UserID: alice.ID, Text: "c", Name: "Alice", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx, post.ID))

	_, err = s.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)

	var likes, comments int
	require.NoError(t, s.DB().GetContext(ctx, &likes, `SELECT COUNT(*) FROM post_likes`))
	require.NoError(t, s.DB().GetContext(ctx, &comments, `SELECT COUNT(*) FROM post_comments`))
	assert.Zero(t, likes)
	assert.Zero(t, comments)

	err = s.DeletePost(ctx, post.ID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestStorage_Likes(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	alice := createTestUser(t, s, "Alice")
	bob := createTestUser(t, s, "Bob")
	post := createTestPost(t, s, alice, "like me", time.Now().UTC())

	likes, err := s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: alice.ID, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	require.Len(t, likes, 1)

	likes, err = s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: bob.ID, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, bob.ID, likes[0].UserID, "newest like goes first")
	assert.Equal(t, alice.ID, likes[1].UserID)

	_, err = s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: bob.ID, CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, storage.ErrLikeExists)

	likes, err = s.RemoveLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, alice.ID, likes[0].UserID)

	_, err = s.RemoveLike(ctx, post.ID, bob.ID)
	assert.ErrorIs(t, err, storage.ErrLikeNotFound)

	missing := uuid.New().String()
	_, err = s.AddLike(ctx, &models.Like{PostID: missing, UserID: bob.ID, CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
	_, err = s.RemoveLike(ctx, missing, bob.ID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestStorage_AddLike_Concurrent(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	alice := createTestUser(t, s, "Alice")
	post := createTestPost(t, s, alice, "race", time.Now().UTC())

	const workers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddLike(ctx, &models.Like{PostID: post.ID, UserID: alice.ID, CreatedAt: time.Now().UTC()})
			if err == nil {
				mu.Lock()
				added++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, storage.ErrLikeExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added)

	got, err := s.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 1)
}

func TestStorage_Comments(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	alice := createTestUser(t, s, "Alice")
	post := createTestPost(t, s, alice, "discuss", time.Now().UTC())

	first := &models.Comment{
		ID: uuid.New().String(), PostID: post.ID, UserID: alice.ID, Text: "one", Name: "Alice", CreatedAt: time.Now().UTC(),
	}
	second := &models.Comment{
		ID: uuid.New().String(), PostID: post.ID, UserID: alice.ID, Text: "two", Name: "Alice", CreatedAt: time.Now().UTC(),
	}

	comments, err := s.AddComment(ctx, first)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	comments, err = s.AddComment(ctx, second)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "two", comments[0].Text)

	comments, err = s.RemoveComment(ctx, post.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, second.ID, comments[0].ID)

	_, err = s.RemoveComment(ctx, post.ID, first.ID)
	assert.ErrorIs(t, err, storage.ErrCommentNotFound)

	_, err = s.AddComment(ctx, &models.Comment{
		ID: uuid.New().String(), PostID: uuid.New().String(), UserID: alice.ID, Text: "x", CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}
