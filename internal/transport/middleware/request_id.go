package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags each request with an ID, honoring one supplied by the
// client. The ID is stored in the context and echoed in the response
// header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
