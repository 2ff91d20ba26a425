package api

// CreatePostRequest представляет запрос на создание поста
type CreatePostRequest struct {
	Text string `json:"text" validate:"notblank" msg:"Text is required"`
}

// CommentRequest представляет запрос на добавление комментария
type CommentRequest struct {
	Text string `json:"text" validate:"notblank" msg:"Text is required"`
}

// MessageResponse представляет ответ с информационным сообщением
type MessageResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Checks  map[string]string `json:"checks,omitempty"`
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
}
