package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/devsocial/internal/server/handlers"
)

// RequestIDHeader - заголовок с идентификатором запроса.
// Входящее значение переиспользуется, иначе генерируется новое
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 64

// statusWriter запоминает статус и размер ответа
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// LoggingMiddleware пишет access log: request id, метод, путь, маршрут ServeMux,
// статус, длительность, размер ответа и user_id, если запрос прошел AuthGate.
// Заголовки и тело не логируются (там токены и пароли)
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			info := &handlers.RequestInfo{ID: requestID(r)}
			w.Header().Set(RequestIDHeader, info.ID)
			r = r.WithContext(handlers.WithRequestInfo(r.Context(), info))

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("request_id", info.ID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", r.Pattern),
				slog.Int("status", sw.status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int64("bytes", sw.bytes),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if info.UserID != "" {
				attrs = append(attrs, slog.String("user_id", info.UserID))
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "HTTP request", attrs...)
		})
	}
}

// LoggingWithSkip не логирует часто опрашиваемые пути (/health, /metrics)
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		logged := LoggingMiddleware(logger)(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			logged.ServeHTTP(w, r)
		})
	}
}

func requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" && len(id) <= maxRequestIDLen {
		return id
	}
	return uuid.NewString()
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
