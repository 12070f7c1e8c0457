package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-classifier/internal/domain"
)

// Recovery returns middleware that recovers from panics in downstream
// handlers, logs the panic with its stack and request ID, and answers with the
// generic 500 {error, message} body. If the response headers have already
// been written, only the log entry is emitted.
//
// POST /predict recovers on its own to serve the fixed fallback
// classification, so panics reach this middleware only from other routes.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.started() {
					// The panic value is logged, never written to the client.
					dto.WriteErrorResponse(rw, r, domain.ErrInternal)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
