package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/pkg/api"
)

// TokenHeader is the header the server reads the token from
const TokenHeader = "x-auth-token"

// Error is a non-2xx response from the server
type Error struct {
	Msg        string
	Code       string
	Details    []api.ErrorItem
	StatusCode int
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		msgs := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			msgs = append(msgs, d.Msg)
		}
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Msg)
}

// IsUnauthorized reports whether the server rejected the token.
// 401 из проверки владельца (not_owner) сюда не относится
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		apiErr.StatusCode == http.StatusUnauthorized &&
		apiErr.Code != api.CodeNotOwner
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент. baseURL включает префикс API, например http://localhost:5000/api
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем токен при редиректе
				if len(via) > 0 && via[0].Header.Get(TokenHeader) != "" {
					req.Header.Set(TokenHeader, via[0].Header.Get(TokenHeader))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/users", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает пользователя, которому принадлежит токен
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodGet, "/auth", token, nil, &user); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &user, nil
}

// CreatePost публикует новый пост
func (c *Client) CreatePost(ctx context.Context, token, text string) (*models.Post, error) {
	var post models.Post
	if err := c.doRequest(ctx, http.MethodPost, "/posts", token, api.CreatePostRequest{Text: text}, &post); err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}
	return &post, nil
}

// ListPosts возвращает ленту, новые посты первыми
func (c *Client) ListPosts(ctx context.Context, token string) ([]*models.Post, error) {
	var posts []*models.Post
	if err := c.doRequest(ctx, http.MethodGet, "/posts", token, nil, &posts); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	return posts, nil
}

// GetPost возвращает пост по id
func (c *Client) GetPost(ctx context.Context, token, postID string) (*models.Post, error) {
	var post models.Post
	if err := c.doRequest(ctx, http.MethodGet, "/posts/"+url.PathEscape(postID), token, nil, &post); err != nil {
		return nil, fmt.Errorf("get post request failed: %w", err)
	}
	return &post, nil
}

// DeletePost удаляет собственный пост
func (c *Client) DeletePost(ctx context.Context, token, postID string) error {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/posts/"+url.PathEscape(postID), token, nil, &resp); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

// Like ставит лайк и возвращает актуальный список лайков
func (c *Client) Like(ctx context.Context, token, postID string) ([]models.Like, error) {
	var likes []models.Like
	if err := c.doRequest(ctx, http.MethodPut, "/posts/like/"+url.PathEscape(postID), token, nil, &likes); err != nil {
		return nil, fmt.Errorf("like request failed: %w", err)
	}
	return likes, nil
}

// Unlike снимает лайк
func (c *Client) Unlike(ctx context.Context, token, postID string) ([]models.Like, error) {
	var likes []models.Like
	if err := c.doRequest(ctx, http.MethodPut, "/posts/unlike/"+url.PathEscape(postID), token, nil, &likes); err != nil {
		return nil, fmt.Errorf("unlike request failed: %w", err)
	}
	return likes, nil
}

// Comment добавляет комментарий к посту
func (c *Client) Comment(ctx context.Context, token, postID, text string) ([]models.Comment, error) {
	var comments []models.Comment
	path := "/posts/comment/" + url.PathEscape(postID)
	if err := c.doRequest(ctx, http.MethodPost, path, token, api.CommentRequest{Text: text}, &comments); err != nil {
		return nil, fmt.Errorf("comment request failed: %w", err)
	}
	return comments, nil
}

// Uncomment удаляет собственный комментарий
func (c *Client) Uncomment(ctx context.Context, token, postID, commentID string) ([]models.Comment, error) {
	var comments []models.Comment
	path := "/posts/comment/" + url.PathEscape(postID) + "/" + url.PathEscape(commentID)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, &comments); err != nil {
		return nil, fmt.Errorf("uncomment request failed: %w", err)
	}
	return comments, nil
}

// TokenExpiry читает exp из токена без проверки подписи (секрет есть только у сервера)
func TokenExpiry(token string) (time.Time, error) {
	claims := &gojwt.RegisteredClaims{}
	if _, _, err := gojwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeError разбирает оба формата ошибок сервера: {msg, code} и {errors: [...]}
func decodeError(status int, body []byte) error {
	var payload struct {
		Msg    string          `json:"msg"`
		Code   string          `json:"code"`
		Errors []api.ErrorItem `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || (payload.Msg == "" && len(payload.Errors) == 0) {
		return &Error{StatusCode: status, Msg: strings.TrimSpace(string(body))}
	}

	return &Error{
		StatusCode: status,
		Msg:        payload.Msg,
		Code:       payload.Code,
		Details:    payload.Errors,
	}
}
