// Package router assembles the HTTP surface: routes under a configurable
// prefix, the auth gate for private routes and the ambient middleware chain.
package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/devsocial/internal/server/handlers"
	"github.com/iudanet/devsocial/internal/server/metrics"
	"github.com/iudanet/devsocial/internal/server/middleware"
)

// DefaultPrefix is used when Config.Prefix is empty
const DefaultPrefix = "/api"

// Config holds everything needed to build the router
type Config struct {
	Logger  *slog.Logger
	Auth    *handlers.AuthHandler
	Posts   *handlers.PostsHandler
	Health  *handlers.HealthHandler
	Gate    *middleware.AuthGate
	Metrics *metrics.Metrics // nil отключает /metrics и сбор HTTP метрик
	Prefix  string
}

// New builds the root handler
func New(cfg Config) http.Handler {
	prefix := normalizePrefix(cfg.Prefix)
	mux := http.NewServeMux()

	route := func(method, path string, h http.Handler) {
		mux.Handle(method+" "+prefix+path, h)
	}
	private := func(method, path string, h handlers.AuthedHandlerFunc) {
		route(method, path, cfg.Gate.Require(h))
	}

	// Публичные маршруты
	route(http.MethodPost, "/users", http.HandlerFunc(cfg.Auth.Register))
	route(http.MethodPost, "/auth", http.HandlerFunc(cfg.Auth.Login))
	route(http.MethodGet, "/health", http.HandlerFunc(cfg.Health.Health))

	// Маршруты за AuthGate
	private(http.MethodGet, "/auth", cfg.Auth.Me)
	private(http.MethodPost, "/posts", cfg.Posts.Create)
	private(http.MethodGet, "/posts", cfg.Posts.List)
	private(http.MethodGet, "/posts/{id}", cfg.Posts.Get)
	private(http.MethodDelete, "/posts/{id}", cfg.Posts.Delete)
	private(http.MethodPut, "/posts/like/{id}", cfg.Posts.Like)
	private(http.MethodPut, "/posts/unlike/{id}", cfg.Posts.Unlike)
	private(http.MethodPost, "/posts/comment/{id}", cfg.Posts.Comment)
	private(http.MethodDelete, "/posts/comment/{id}/{comment_id}", cfg.Posts.Uncomment)

	var handler http.Handler = mux
	handler = middleware.RecoveryMiddleware(cfg.Logger)(handler)

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
		handler = cfg.Metrics.Middleware(handler)
	}

	handler = middleware.LoggingWithSkip(cfg.Logger, []string{prefix + "/health", "/metrics"})(handler)

	return handler
}

// normalizePrefix приводит префикс к виду "/api": ведущий слэш, без завершающего.
// Пустая строка заменяется на DefaultPrefix, "/" означает корень
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return DefaultPrefix
	}
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return ""
	}
	return prefix
}
