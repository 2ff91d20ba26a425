// Package cli implements the devsocial terminal client commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/devsocial/internal/client/api"
	"github.com/iudanet/devsocial/internal/client/iocli"
	"github.com/iudanet/devsocial/internal/client/storage"
	"github.com/iudanet/devsocial/internal/models"
	pkgapi "github.com/iudanet/devsocial/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API is the subset of the server API used by the commands
type API interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.TokenResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Me(ctx context.Context, token string) (*models.User, error)
	CreatePost(ctx context.Context, token, text string) (*models.Post, error)
	ListPosts(ctx context.Context, token string) ([]*models.Post, error)
	GetPost(ctx context.Context, token, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, token, postID string) error
	Like(ctx context.Context, token, postID string) ([]models.Like, error)
	Unlike(ctx context.Context, token, postID string) ([]models.Like, error)
	Comment(ctx context.Context, token, postID, text string) ([]models.Comment, error)
	Uncomment(ctx context.Context, token, postID, commentID string) ([]models.Comment, error)
}

// DefaultServerURL points at a locally running server with the default prefix
const DefaultServerURL = "http://localhost:5000/api"

type Cli struct {
	io     iocli.IO
	api    API
	store  storage.SessionStorage
	now    func() time.Time
	closer func() error
	server string
}

// New creates a Cli with explicit dependencies
func New(io iocli.IO, apiClient API, store storage.SessionStorage, server string) *Cli {
	return &Cli{
		io:     io,
		api:    apiClient,
		store:  store,
		server: server,
		now:    time.Now,
	}
}

// session возвращает текущую сессию или понятную пользователю ошибку
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	session, err := c.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'devsocial login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(c.now()) {
		return nil, fmt.Errorf("session expired. Please run 'devsocial login' again")
	}

	return session, nil
}

// saveSession запрашивает профиль по свежему токену и сохраняет сессию
func (c *Cli) saveSession(ctx context.Context, token string) (*storage.Session, error) {
	user, err := c.api.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	session := &storage.Session{
		Server: c.server,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}

	if exp, err := api.TokenExpiry(token); err == nil && !exp.IsZero() {
		session.ExpiresAt = exp.Unix()
	}

	if err := c.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// apiError дополняет ошибку сервера подсказкой, если токен больше не принимается
func apiError(err error) error {
	if api.IsUnauthorized(err) {
		return fmt.Errorf("session is no longer valid. Please run 'devsocial login' again: %w", err)
	}
	return err
}

func (c *Cli) close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer()
	c.closer = nil
	return err
}
