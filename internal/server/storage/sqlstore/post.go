package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/storage"
)

const (
	selectPostColumns    = `SELECT id, user_id, text, name, avatar, created_at FROM posts`
	selectLikeColumns    = `SELECT post_id, user_id, created_at FROM post_likes`
	selectCommentColumns = `SELECT id, post_id, user_id, text, name, avatar, created_at FROM post_comments`
)

// CreatePost stores a new post
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) error {
	query := s.db.Rebind(`
		INSERT INTO posts (id, user_id, text, name, avatar, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := s.db.ExecContext(ctx, query,
		post.ID,
		post.UserID,
		post.Text,
		post.Name,
		post.Avatar,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// ListPosts returns all posts, newest first
func (s *Storage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts := []*models.Post{}
	if err := s.db.SelectContext(ctx, &posts, selectPostColumns+` ORDER BY created_at DESC, seq DESC`); err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	// Лайки и комментарии загружаем двумя запросами и раскладываем по постам
	likes := []models.Like{}
	if err := s.db.SelectContext(ctx, &likes, selectLikeColumns+` ORDER BY seq DESC`); err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}

	comments := []models.Comment{}
	if err := s.db.SelectContext(ctx, &comments, selectCommentColumns+` ORDER BY seq DESC`); err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	byID := make(map[string]*models.Post, len(posts))
	for _, p := range posts {
		p.Likes = []models.Like{}
		p.Comments = []models.Comment{}
		byID[p.ID] = p
	}
	for _, l := range likes {
		if p, ok := byID[l.PostID]; ok {
			p.Likes = append(p.Likes, l)
		}
	}
	for _, c := range comments {
		if p, ok := byID[c.PostID]; ok {
			p.Comments = append(p.Comments, c)
		}
	}

	return posts, nil
}

// GetPost retrieves a single post with likes and comments
func (s *Storage) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post := &models.Post{}
	if err := s.db.GetContext(ctx, post, s.db.Rebind(selectPostColumns+` WHERE id = ?`), postID); err != nil {
		if isNoRows(err) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	likes, err := selectLikes(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}
	comments, err := selectComments(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}

	post.Likes = likes
	post.Comments = comments

	return post, nil
}

// DeletePost removes the post with its likes and comments
func (s *Storage) DeletePost(ctx context.Context, postID string) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		// Явно чистим вложенные сущности: на SQLite каскад зависит от PRAGMA foreign_keys
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM post_likes WHERE post_id = ?`), postID); err != nil {
			return fmt.Errorf("failed to delete likes: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM post_comments WHERE post_id = ?`), postID); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM posts WHERE id = ?`), postID)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			return storage.ErrPostNotFound
		}

		return nil
	})
}

// AddLike inserts a like, relying on the (post_id, user_id) unique constraint
func (s *Storage) AddLike(ctx context.Context, like *models.Like) ([]models.Like, error) {
	var likes []models.Like

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensurePost(ctx, tx, like.PostID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO post_likes (post_id, user_id, created_at)
			VALUES (?, ?, ?)
			ON CONFLICT (post_id, user_id) DO NOTHING
		`), like.PostID, like.UserID, like.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert like: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			return storage.ErrLikeExists
		}

		likes, err = selectLikes(ctx, tx, like.PostID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return likes, nil
}

// RemoveLike removes the user's like from the post
func (s *Storage) RemoveLike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	var likes []models.Like

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensurePost(ctx, tx, postID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM post_likes WHERE post_id = ? AND user_id = ?`), postID, userID)
		if err != nil {
			return fmt.Errorf("failed to delete like: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			return storage.ErrLikeNotFound
		}

		likes, err = selectLikes(ctx, tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return likes, nil
}

// AddComment stores a comment on the post
func (s *Storage) AddComment(ctx context.Context, comment *models.Comment) ([]models.Comment, error) {
	var comments []models.Comment

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensurePost(ctx, tx, comment.PostID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO post_comments (id, post_id, user_id, text, name, avatar, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`),
			comment.ID,
			comment.PostID,
			comment.UserID,
			comment.Text,
			comment.Name,
			comment.Avatar,
			comment.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		comments, err = selectComments(ctx, tx, comment.PostID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// RemoveComment removes a comment from the post
func (s *Storage) RemoveComment(ctx context.Context, postID, commentID string) ([]models.Comment, error) {
	var comments []models.Comment

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensurePost(ctx, tx, postID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM post_comments WHERE id = ? AND post_id = ?`), commentID, postID)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			return storage.ErrCommentNotFound
		}

		comments, err = selectComments(ctx, tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// ensurePost проверяет существование поста внутри транзакции
func ensurePost(ctx context.Context, q sqlx.ExtContext, postID string) error {
	var one int
	if err := sqlx.GetContext(ctx, q, &one, q.Rebind(`SELECT 1 FROM posts WHERE id = ?`), postID); err != nil {
		if isNoRows(err) {
			return storage.ErrPostNotFound
		}
		return fmt.Errorf("failed to check post: %w", err)
	}
	return nil
}

func selectLikes(ctx context.Context, q sqlx.ExtContext, postID string) ([]models.Like, error) {
	likes := []models.Like{}
	if err := sqlx.SelectContext(ctx, q, &likes, q.Rebind(selectLikeColumns+` WHERE post_id = ? ORDER BY seq DESC`), postID); err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	return likes, nil
}

func selectComments(ctx context.Context, q sqlx.ExtContext, postID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := sqlx.SelectContext(ctx, q, &comments, q.Rebind(selectCommentColumns+` WHERE post_id = ? ORDER BY seq DESC`), postID); err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	return comments, nil
}
