package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"notblank" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6,maxbytes=72" msg:"Please enter a password with 6 or more characters" msg_maxbytes:"Password must be at most 72 bytes"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token string `json:"token"` // JWT, передается в заголовке x-auth-token
}

// Коды ошибок в поле code
const (
	CodeInvalidRequest = "invalid_request"
	CodeNoToken        = "no_token"
	CodeInvalidToken   = "invalid_token"
	CodeNotFound       = "not_found"
	CodeNotOwner       = "not_owner"
	CodeAlreadyLiked   = "already_liked"
	CodeNotLiked       = "not_liked"
	CodeServerError    = "server_error"
)

// ErrorResponse представляет ответ с одной ошибкой
type ErrorResponse struct {
	Msg  string `json:"msg"`           // человекочитаемое сообщение
	Code string `json:"code,omitempty"` // машинный код ошибки
}

// ErrorItem - элемент списка ошибок
type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorsResponse представляет ответ со списком ошибок (валидация, конфликт)
type ErrorsResponse struct {
	Errors []ErrorItem `json:"errors"`
}
