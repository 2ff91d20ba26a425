package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/devsocial/pkg/api"
)

const (
	healthTimeout = 2 * time.Second

	HealthOK          = "ok"
	HealthDegraded    = "degraded"
	HealthUnavailable = "unavailable"
	healthDown        = "down"
)

// Pinger проверяет доступность зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc адаптирует функцию к Pinger
type PingFunc func(ctx context.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthCheck - именованная зависимость сервера.
// Отказ Optional зависимости (кэш, события) дает degraded с кодом 200, без нее сервер работает
type HealthCheck struct {
	Pinger   Pinger
	Name     string
	Optional bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	version string
	checks  []HealthCheck
}

// NewHealthHandler создает handler. Без checks проверяется только живость процесса
func NewHealthHandler(logger *slog.Logger, version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
		checks:  checks,
	}
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{Status: HealthOK, Version: h.version}
	code := http.StatusOK

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp.Checks = make(map[string]string, len(h.checks))
		for _, c := range h.checks {
			if err := c.Pinger.Ping(ctx); err != nil {
				h.logger.ErrorContext(r.Context(), "Health check failed",
					slog.String("check", c.Name),
					slog.Any("error", err))

				resp.Checks[c.Name] = healthDown
				if !c.Optional {
					resp.Status = HealthUnavailable
					code = http.StatusServiceUnavailable
				} else if resp.Status == HealthOK {
					resp.Status = HealthDegraded
				}
				continue
			}
			resp.Checks[c.Name] = HealthOK
		}
	}

	SendJSON(h.logger, w, resp, code)
}
