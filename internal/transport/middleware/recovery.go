package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/hangeul-backend/internal/transport/response"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace and responds with a 500 JSON failure. The stack is
// included in the body only when showStack is set.
func Recovery(logger *slog.Logger, showStack bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", stack),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				body := response.Failure{Error: fmt.Sprint(rec)}
				if showStack {
					body.Stack = stack
				} else {
					body.Error = "Internal Server Error"
				}
				response.JSON(w, r, http.StatusInternalServerError, body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
