package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/devsocial/internal/server/handlers"
	"github.com/iudanet/devsocial/internal/server/jwt"
)

// TokenHeader - заголовок с токеном. Имя сохранено для совместимости с клиентами
const TokenHeader = "x-auth-token"

// TokenVerifier проверяет токен и возвращает user_id
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthGate пропускает к обработчику только запросы с валидным токеном
type AuthGate struct {
	logger *slog.Logger
	tokens TokenVerifier
}

// NewAuthGate создает AuthGate
func NewAuthGate(logger *slog.Logger, tokens TokenVerifier) *AuthGate {
	return &AuthGate{
		logger: logger,
		tokens: tokens,
	}
}

// Require оборачивает обработчик проверкой токена.
// Одна проверка на запрос, без кеширования и без обращения к хранилищу
func (g *AuthGate) Require(next handlers.AuthedHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := r.Header.Get(TokenHeader)
		if token == "" {
			g.logger.WarnContext(ctx, "Missing auth token", slog.String("path", r.URL.Path))
			handlers.SendError(g.logger, w, http.StatusUnauthorized, handlers.MsgNoToken, handlers.CodeNoToken)
			return
		}

		userID, err := g.tokens.Verify(token)
		if err != nil {
			reason := "malformed"
			if errors.Is(err, jwt.ErrExpired) {
				reason = "expired"
			}
			g.logger.WarnContext(ctx, "Invalid auth token",
				slog.String("reason", reason),
				slog.String("path", r.URL.Path))
			handlers.SendError(g.logger, w, http.StatusUnauthorized, handlers.MsgInvalidToken, handlers.CodeInvalidToken)
			return
		}

		g.logger.DebugContext(ctx, "User authenticated", slog.String("user_id", userID))

		r = r.WithContext(handlers.WithUserID(ctx, userID))
		next(w, r, handlers.Identity{UserID: userID})
	})
}
