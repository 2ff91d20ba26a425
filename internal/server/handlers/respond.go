package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/devsocial/internal/server/service"
	"github.com/iudanet/devsocial/internal/validation"
	"github.com/iudanet/devsocial/pkg/api"
)

// maxBodySize ограничивает размер тела запроса
const maxBodySize = 1 << 20

// Машинные коды ошибок в ответах
const (
	CodeInvalidRequest = api.CodeInvalidRequest
	CodeNoToken        = api.CodeNoToken
	CodeInvalidToken   = api.CodeInvalidToken
	CodeNotFound       = api.CodeNotFound
	CodeNotOwner       = api.CodeNotOwner
	CodeAlreadyLiked   = api.CodeAlreadyLiked
	CodeNotLiked       = api.CodeNotLiked
	CodeServerError    = api.CodeServerError
)

// Сообщения ошибок, совместимые с существующими клиентами
const (
	MsgNoToken            = "No token, auth denied"
	MsgInvalidToken       = "Token is not valid"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgPostNotFound       = "Post not found"
	MsgNotAuthorized      = "User not authorized"
	MsgAlreadyLiked       = "Post already liked"
	MsgNotLiked           = "Post has not yet been liked"
	MsgCommentNotFound    = "Comment does not exist"
	MsgTextRequired       = "Text is required"
	MsgPostRemoved        = "Post removed"
	MsgServerError        = "Server Error"
	MsgInvalidBody        = "Invalid request body"
)

// SendJSON отправляет JSON ответ
func SendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// SendError отправляет ответ вида {"msg": ..., "code": ...}
func SendError(logger *slog.Logger, w http.ResponseWriter, statusCode int, msg, code string) {
	SendJSON(logger, w, api.ErrorResponse{Msg: msg, Code: code}, statusCode)
}

// sendErrors отправляет ответ вида {"errors": [...]} со статусом 400
func sendErrors(logger *slog.Logger, w http.ResponseWriter, items ...api.ErrorItem) {
	SendJSON(logger, w, api.ErrorsResponse{Errors: items}, http.StatusBadRequest)
}

// decodeAndValidate читает JSON тело запроса строго по схеме и валидирует его.
// При ошибке сам отправляет ответ 400 и возвращает false
func decodeAndValidate(logger *slog.Logger, w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		logger.WarnContext(r.Context(), "Failed to decode request", slog.Any("error", err))
		SendError(logger, w, http.StatusBadRequest, MsgInvalidBody, CodeInvalidRequest)
		return false
	}

	// Лишние данные после JSON объекта тоже считаем ошибкой
	if dec.More() {
		SendError(logger, w, http.StatusBadRequest, MsgInvalidBody, CodeInvalidRequest)
		return false
	}

	if err := validation.Struct(dst); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			items := make([]api.ErrorItem, 0, len(verrs))
			for _, fe := range verrs {
				items = append(items, api.ErrorItem{Msg: fe.Msg, Param: fe.Param})
			}
			sendErrors(logger, w, items...)
			return false
		}
		logger.ErrorContext(r.Context(), "Validation failed unexpectedly", slog.Any("error", err))
		SendError(logger, w, http.StatusBadRequest, MsgInvalidBody, CodeInvalidRequest)
		return false
	}

	return true
}

// sendServiceError переводит доменную ошибку в HTTP ответ.
// Неизвестные ошибки логируются и превращаются в 500 без деталей
func sendServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		SendError(logger, w, http.StatusNotFound, MsgPostNotFound, CodeNotFound)
	case errors.Is(err, service.ErrCommentNotFound):
		SendError(logger, w, http.StatusNotFound, MsgCommentNotFound, CodeNotFound)
	case errors.Is(err, service.ErrNotOwner):
		SendError(logger, w, http.StatusUnauthorized, MsgNotAuthorized, CodeNotOwner)
	case errors.Is(err, service.ErrAlreadyLiked):
		SendError(logger, w, http.StatusBadRequest, MsgAlreadyLiked, CodeAlreadyLiked)
	case errors.Is(err, service.ErrNotLiked):
		SendError(logger, w, http.StatusBadRequest, MsgNotLiked, CodeNotLiked)
	case errors.Is(err, service.ErrEmptyText):
		sendErrors(logger, w, api.ErrorItem{Msg: MsgTextRequired, Param: "text"})
	case errors.Is(err, service.ErrEmailExists):
		sendErrors(logger, w, api.ErrorItem{Msg: MsgUserExists})
	case errors.Is(err, service.ErrInvalidCredentials):
		sendErrors(logger, w, api.ErrorItem{Msg: MsgInvalidCredentials})
	case errors.Is(err, service.ErrUserNotFound):
		// Токен подписан верно, но пользователя уже нет: для клиента токен недействителен
		userID, _ := GetUserID(r.Context())
		logger.WarnContext(r.Context(), "Token owner no longer exists", slog.String("user_id", userID))
		SendError(logger, w, http.StatusUnauthorized, MsgInvalidToken, CodeInvalidToken)
	default:
		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		}
		if userID, ok := GetUserID(r.Context()); ok {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		logger.ErrorContext(r.Context(), "Request failed", attrs...)
		SendError(logger, w, http.StatusInternalServerError, MsgServerError, CodeServerError)
	}
}
