package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/config"
	"github.com/thepole/flyerboard-backend/internal/transport/middleware"
)

// tokenValidator resolves bearer tokens to viewer IDs.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Feed     *FeedHandler
	Swipe    *SwipeHandler
	Saved    *SavedHandler
	Calendar *CalendarHandler
	Health   *HealthHandler
}

// NewRouter assembles the HTTP mux with the standard middleware chain:
// request-id → logger → recovery → CORS → auth.
func NewRouter(logger *slog.Logger, cfg config.CORSConfig, validator tokenValidator, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health endpoints bypass auth.
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("GET /api/flyers", deps.Feed.List)
	mux.HandleFunc("GET /api/flyers/{id}", deps.Feed.GetFlyer)
	mux.HandleFunc("GET /api/flyers/{id}/calendar.ics", deps.Calendar.Download)
	mux.HandleFunc("GET /api/categories", deps.Feed.Categories)

	mux.HandleFunc("POST /api/flyers/{id}/save", deps.Saved.Save)
	mux.HandleFunc("DELETE /api/flyers/{id}/save", deps.Saved.Unsave)
	mux.HandleFunc("GET /api/saved", deps.Saved.List)

	mux.HandleFunc("POST /api/swipe/session", deps.Swipe.Start)
	mux.HandleFunc("GET /api/swipe/session", deps.Swipe.State)
	mux.HandleFunc("DELETE /api/swipe/session", deps.Swipe.End)
	mux.HandleFunc("POST /api/swipe/decide", deps.Swipe.Decide)
	mux.HandleFunc("POST /api/swipe/reset", deps.Swipe.Reset)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg),
		middleware.Auth(validator),
	)

	return chain(mux)
}
