package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/events"
	"github.com/iudanet/devsocial/internal/server/metrics"
	"github.com/iudanet/devsocial/internal/server/storage"
)

// PostService реализует операции с постами, лайками и комментариями.
// Все мутации выполняются от имени аутентифицированного пользователя
type PostService struct {
	logger *slog.Logger
	users  storage.UserStorage
	posts  storage.PostStorage
	opts   Options
}

// NewPostService creates a new post service
func NewPostService(logger *slog.Logger, users storage.UserStorage, posts storage.PostStorage, opts Options) *PostService {
	return &PostService{
		logger: logger,
		users:  users,
		posts:  posts,
		opts:   opts.withDefaults(),
	}
}

// Create публикует пост. Имя и аватар копируются из профиля автора
func (s *PostService) Create(ctx context.Context, userID, text string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	author, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        uuid.New().String(),
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: s.opts.Now().UTC(),
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.opts.Metrics.RecordPostAction(metrics.ActionCreate)
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectPostCreated,
		PostID:    post.ID,
		UserID:    userID,
		Timestamp: post.CreatedAt,
	})

	return post, nil
}

// List returns all posts, newest first
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Get returns a single post. Malformed ids are reported as ErrPostNotFound
func (s *PostService) Get(ctx context.Context, postID string) (*models.Post, error) {
	if !validID(postID) {
		return nil, ErrPostNotFound
	}

	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, mapPostErr(err)
	}
	return post, nil
}

// Delete удаляет пост вместе с лайками и комментариями. Удалить может только владелец
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		s.logger.WarnContext(ctx, "Delete attempt by non-owner",
			slog.String("post_id", postID),
			slog.String("user_id", userID))
		return ErrNotOwner
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return mapPostErr(err)
	}

	s.opts.Metrics.RecordPostAction(metrics.ActionDelete)
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectPostDeleted,
		PostID:    postID,
		UserID:    userID,
		Timestamp: s.opts.Now().UTC(),
	})

	return nil
}

// Like ставит лайк и возвращает обновленный список лайков (новые сверху).
// Повторный лайк отсекается уникальным ограничением хранилища
func (s *PostService) Like(ctx context.Context, userID, postID string) ([]models.Like, error) {
	if !validID(postID) {
		return nil, ErrPostNotFound
	}

	like := &models.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: s.opts.Now().UTC(),
	}

	likes, err := s.posts.AddLike(ctx, like)
	if err != nil {
		if errors.Is(err, storage.ErrLikeExists) {
			return nil, ErrAlreadyLiked
		}
		return nil, mapPostErr(err)
	}

	s.opts.Metrics.RecordPostAction(metrics.ActionLike)
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectPostLiked,
		PostID:    postID,
		UserID:    userID,
		Likes:     len(likes),
		Timestamp: like.CreatedAt,
	})

	return likes, nil
}

// Unlike снимает лайк пользователя. Если лайка не было, возвращает ErrNotLiked
func (s *PostService) Unlike(ctx context.Context, userID, postID string) ([]models.Like, error) {
	if !validID(postID) {
		return nil, ErrPostNotFound
	}

	likes, err := s.posts.RemoveLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrLikeNotFound) {
			return nil, ErrNotLiked
		}
		return nil, mapPostErr(err)
	}

	s.opts.Metrics.RecordPostAction(metrics.ActionUnlike)
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectPostUnliked,
		PostID:    postID,
		UserID:    userID,
		Likes:     len(likes),
		Timestamp: s.opts.Now().UTC(),
	})

	return likes, nil
}

// Comment добавляет комментарий со снимком автора и возвращает все комментарии поста
func (s *PostService) Comment(ctx context.Context, userID, postID, text string) ([]models.Comment, error) {
	if !validID(postID) {
		return nil, ErrPostNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	author, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: s.opts.Now().UTC(),
	}

	comments, err := s.posts.AddComment(ctx, comment)
	if err != nil {
		return nil, mapPostErr(err)
	}

	s.opts.Metrics.RecordPostAction(metrics.ActionComment)
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectCommentAdded,
		PostID:    postID,
		UserID:    userID,
		CommentID: comment.ID,
		Timestamp: comment.CreatedAt,
	})

	return comments, nil
}

// Uncomment удаляет комментарий. Удалить может только его автор
func (s *PostService) Uncomment(ctx context.Context, userID, postID, commentID string) ([]models.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if comment.UserID != userID {
		return nil, ErrNotOwner
	}

	comments, err := s.posts.RemoveComment(ctx, postID, commentID)
	if err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, mapPostErr(err)
	}

	s.opts.Metrics.RecordPostAction(metrics.ActionUncomment)
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectCommentRemoved,
		PostID:    postID,
		UserID:    userID,
		CommentID: commentID,
		Timestamp: s.opts.Now().UTC(),
	})

	return comments, nil
}

// author загружает профиль автора для снимка имени и аватара
func (s *PostService) author(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user, nil
}

func mapPostErr(err error) error {
	if errors.Is(err, storage.ErrPostNotFound) {
		return ErrPostNotFound
	}
	return fmt.Errorf("storage error: %w", err)
}
