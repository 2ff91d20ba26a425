package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/devsocial/internal/server/handlers"
)

// headerTracker отмечает, начал ли обработчик писать ответ
type headerTracker struct {
	http.ResponseWriter
	wrote bool
}

func (w *headerTracker) WriteHeader(code int) {
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerTracker) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

// RecoveryMiddleware перехватывает panic в обработчике, логирует стек вместе с
// request_id/user_id и отвечает {"msg":"Server Error"}. Если ответ уже начат,
// дописывать 500 нельзя, остается только лог
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &headerTracker{ResponseWriter: w}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", tw.wrote),
					slog.String("stack", string(debug.Stack())),
				}
				if info := handlers.RequestInfoFrom(r.Context()); info != nil {
					attrs = append(attrs, slog.String("request_id", info.ID))
					if info.UserID != "" {
						attrs = append(attrs, slog.String("user_id", info.UserID))
					}
				}
				logger.ErrorContext(r.Context(), "Panic recovered", attrs...)

				if !tw.wrote {
					handlers.SendError(logger, w, http.StatusInternalServerError, handlers.MsgServerError, handlers.CodeServerError)
				}
			}()

			next.ServeHTTP(tw, r)
		})
	}
}
