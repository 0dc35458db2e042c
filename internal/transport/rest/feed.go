package rest

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
	"github.com/thepole/flyerboard-backend/internal/service/feed"
)

// feedService defines the minimal interface needed by FeedHandler.
type feedService interface {
	List(ctx context.Context, in feed.ListInput) (*feed.ListResult, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	GetFlyer(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error)
}

// FeedHandler serves the browse feed endpoints.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

type feedResponse struct {
	Flyers             []flyerResponse `json:"flyers"`
	AdultToggleOffered bool            `json:"adult_toggle_offered"`
	NextCursor         *string         `json:"next_cursor,omitempty"`
}

// List handles GET /api/flyers.
// Filters: category, city, date_from, date_to, include_adult, limit, cursor.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := feed.ListInput{
		Criteria: feed.CriteriaInput{
			Category:     q.Get("category"),
			City:         q.Get("city"),
			DateFrom:     q.Get("date_from"),
			DateTo:       q.Get("date_to"),
			IncludeAdult: q.Get("include_adult") == "true",
		},
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		input.Limit = limit
	}

	if raw := q.Get("cursor"); raw != "" {
		cursor, err := decodeCursor(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "malformed cursor")
			return
		}
		input.Cursor = cursor
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := feedResponse{
		Flyers:             toFlyerResponses(result.Flyers),
		AdultToggleOffered: result.Eligibility.AdultToggleOffered,
	}
	if result.NextCursor != nil {
		c := encodeCursor(result.NextCursor)
		resp.NextCursor = &c
	}

	writeJSON(w, http.StatusOK, resp)
}

// Categories handles GET /api/categories.
func (h *FeedHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// GetFlyer handles GET /api/flyers/{id}.
func (h *FeedHandler) GetFlyer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed flyer id")
		return
	}

	flyer, err := h.svc.GetFlyer(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlyerResponse(*flyer))
}

// ---------------------------------------------------------------------------
// Cursor encoding
// ---------------------------------------------------------------------------

// Cursor wire format: base64("RFC3339Nano|uuid").
func encodeCursor(c *domain.FeedCursor) string {
	raw := c.CreatedAt.Format(time.RFC3339Nano) + "|" + c.ID.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(s string) (*domain.FeedCursor, error) {
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}

	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("decode cursor: missing separator")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}

	return &domain.FeedCursor{CreatedAt: createdAt, ID: id}, nil
}
