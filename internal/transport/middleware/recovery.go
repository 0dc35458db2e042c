package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/thepole/flyerboard-backend/pkg/ctxutil"
)

// Recovery converts handler panics into a 500 response. The panic value
// and stack are logged together with the request ID so the failing
// request can be traced.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(r.Context(), "handler panicked",
						slog.Any("panic", v),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
