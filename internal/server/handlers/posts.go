package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/pkg/api"
)

// PostService - операции над постами, нужные HTTP слою
type PostService interface {
	Create(ctx context.Context, userID, text string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, postID string) (*models.Post, error)
	Delete(ctx context.Context, userID, postID string) error
	Like(ctx context.Context, userID, postID string) ([]models.Like, error)
	Unlike(ctx context.Context, userID, postID string) ([]models.Like, error)
	Comment(ctx context.Context, userID, postID, text string) ([]models.Comment, error)
	Uncomment(ctx context.Context, userID, postID, commentID string) ([]models.Comment, error)
}

// PostsHandler обрабатывает запросы к ленте постов
type PostsHandler struct {
	logger *slog.Logger
	posts  PostService
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, posts PostService) *PostsHandler {
	return &PostsHandler{
		logger: logger,
		posts:  posts,
	}
}

// Create обрабатывает POST /posts
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request, id Identity) {
	var req api.CreatePostRequest
	if !decodeAndValidate(h.logger, w, r, &req) {
		return
	}

	post, err := h.posts.Create(r.Context(), id.UserID, req.Text)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, post, http.StatusOK)
}

// List обрабатывает GET /posts
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request, _ Identity) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, posts, http.StatusOK)
}

// Get обрабатывает GET /posts/{id}
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request, _ Identity) {
	post, err := h.posts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, post, http.StatusOK)
}

// Delete обрабатывает DELETE /posts/{id}
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request, id Identity) {
	postID := r.PathValue("id")

	if err := h.posts.Delete(r.Context(), id.UserID, postID); err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Post removed",
		slog.String("post_id", postID),
		slog.String("user_id", id.UserID))

	SendJSON(h.logger, w, api.MessageResponse{Msg: MsgPostRemoved}, http.StatusOK)
}

// Like обрабатывает PUT /posts/like/{id}
func (h *PostsHandler) Like(w http.ResponseWriter, r *http.Request, id Identity) {
	likes, err := h.posts.Like(r.Context(), id.UserID, r.PathValue("id"))
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, likes, http.StatusOK)
}

// Unlike обрабатывает PUT /posts/unlike/{id}
func (h *PostsHandler) Unlike(w http.ResponseWriter, r *http.Request, id Identity) {
	likes, err := h.posts.Unlike(r.Context(), id.UserID, r.PathValue("id"))
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, likes, http.StatusOK)
}

// Comment обрабатывает POST /posts/comment/{id}
func (h *PostsHandler) Comment(w http.ResponseWriter, r *http.Request, id Identity) {
	var req api.CommentRequest
	if !decodeAndValidate(h.logger, w, r, &req) {
		return
	}

	comments, err := h.posts.Comment(r.Context(), id.UserID, r.PathValue("id"), req.Text)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, comments, http.StatusOK)
}

// Uncomment обрабатывает DELETE /posts/comment/{id}/{comment_id}
func (h *PostsHandler) Uncomment(w http.ResponseWriter, r *http.Request, id Identity) {
	comments, err := h.posts.Uncomment(r.Context(), id.UserID, r.PathValue("id"), r.PathValue("comment_id"))
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, comments, http.StatusOK)
}
