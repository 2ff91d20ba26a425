package storage

import (
	"context"

	"github.com/iudanet/devsocial/internal/models"
)

// PostStorage defines interface for posts with their embedded likes and comments
type PostStorage interface {
	// CreatePost stores a new post. Likes and comments are ignored.
	CreatePost(ctx context.Context, post *models.Post) error

	// ListPosts returns all posts ordered by creation time, newest first,
	// with likes and comments populated
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// GetPost retrieves a single post with likes and comments
	// Returns ErrPostNotFound if post doesn't exist
	GetPost(ctx context.Context, postID string) (*models.Post, error)

	// DeletePost permanently removes the post together with its likes and comments
	// Returns ErrPostNotFound if post doesn't exist
	DeletePost(ctx context.Context, postID string) error

	// AddLike atomically inserts a like and returns the updated likes, newest first
	// Returns ErrPostNotFound if post doesn't exist
	// Returns ErrLikeExists if this user already liked the post
	AddLike(ctx context.Context, like *models.Like) ([]models.Like, error)

	// RemoveLike removes the user's like and returns the remaining likes
	// Returns ErrPostNotFound if post doesn't exist
	// Returns ErrLikeNotFound if this user has not liked the post
	RemoveLike(ctx context.Context, postID, userID string) ([]models.Like, error)

	// AddComment stores a comment and returns all comments of the post, newest first
	// Returns ErrPostNotFound if post doesn't exist
	AddComment(ctx context.Context, comment *models.Comment) ([]models.Comment, error)

	// RemoveComment removes a comment and returns the remaining comments
	// Returns ErrPostNotFound if post doesn't exist
	// Returns ErrCommentNotFound if comment doesn't belong to the post
	RemoveComment(ctx context.Context, postID, commentID string) ([]models.Comment, error)
}
