package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/service"
	"github.com/iudanet/devsocial/pkg/api"
)

// UserService - операции над учетными записями, нужные HTTP слою
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}

// TokenIssuer выпускает токены для аутентифицированных пользователей
type TokenIssuer interface {
	Issue(userID string) (string, int64, error)
}

// AuthHandler обрабатывает регистрацию и аутентификацию
type AuthHandler struct {
	logger *slog.Logger
	users  UserService
	tokens TokenIssuer
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users UserService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Register обрабатывает POST /users
// Регистрация нового пользователя, в ответ сразу выдается токен
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if !decodeAndValidate(h.logger, w, r, &req) {
		return
	}

	user, err := h.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			h.logger.WarnContext(ctx, "User already exists")
		}
		sendServiceError(h.logger, w, r, err)
		return
	}

	h.sendToken(w, r, user.ID)
}

// Login обрабатывает POST /auth
// Проверка email и пароля, в ответ выдается токен
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if !decodeAndValidate(h.logger, w, r, &req) {
		return
	}

	user, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "Invalid login attempt")
		}
		sendServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "User logged in", slog.String("user_id", user.ID))

	h.sendToken(w, r, user.ID)
}

// Me обрабатывает GET /auth
// Возвращает профиль текущего пользователя без хеша пароля
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, id Identity) {
	user, err := h.users.FindByID(r.Context(), id.UserID)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, user, http.StatusOK)
}

func (h *AuthHandler) sendToken(w http.ResponseWriter, r *http.Request, userID string) {
	token, _, err := h.tokens.Issue(userID)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	SendJSON(h.logger, w, api.TokenResponse{Token: token}, http.StatusOK)
}
