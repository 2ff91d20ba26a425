package handlers

import (
	"context"
	"net/http"
)

// contextKey тип для ключей контекста
type contextKey string

const userIDKey contextKey = "user_id"

// Identity - аутентифицированный пользователь, от имени которого выполняется запрос
type Identity struct {
	UserID string
}

// AuthedHandlerFunc - обработчик, вызываемый только после успешной проверки токена.
// Identity передается явно, а не извлекается из контекста
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, id Identity)

// RequestInfo собирает сведения о запросе для access log.
// Указатель кладется в контекст до роутинга, AuthGate дописывает в него UserID
type RequestInfo struct {
	ID     string
	UserID string
}

type requestInfoKey struct{}

// WithRequestInfo возвращает контекст с RequestInfo
func WithRequestInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFrom возвращает RequestInfo запроса или nil
func RequestInfoFrom(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*RequestInfo)
	return info
}

// WithUserID возвращает контекст с user_id и отмечает пользователя в RequestInfo
func WithUserID(ctx context.Context, userID string) context.Context {
	if info := RequestInfoFrom(ctx); info != nil {
		info.UserID = userID
	}
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
