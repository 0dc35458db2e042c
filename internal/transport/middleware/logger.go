package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/thepole/flyerboard-backend/pkg/ctxutil"
)

// Logger returns middleware that emits one structured log line after the
// handler finishes. Server errors (5xx) are logged at error level,
// everything else at info. The viewer_id attribute only appears on
// authenticated requests; anonymous traffic is logged without it.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := make([]slog.Attr, 0, 6)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(started)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			if viewerID, ok := ctxutil.ViewerIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("viewer_id", viewerID.String()))
			}

			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusRecorder captures the status code written by the handler.
// WriteHeader may be called more than once by buggy handlers; only the
// first call counts, matching net/http behavior.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
