package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/thepole/flyerboard-backend/internal/service/feed"
	"github.com/thepole/flyerboard-backend/internal/service/swipe"
)

// swipeService defines the minimal interface needed by SwipeHandler.
type swipeService interface {
	Start(ctx context.Context, input swipe.StartInput) (swipe.Snapshot, error)
	State(ctx context.Context) (swipe.Snapshot, error)
	Decide(ctx context.Context, direction swipe.Direction) (*swipe.DecideResult, error)
	Reset(ctx context.Context, policy swipe.ResetPolicy) (swipe.Snapshot, error)
	End(ctx context.Context) error
}

// SwipeHandler serves the swipe session endpoints.
type SwipeHandler struct {
	svc swipeService
	log *slog.Logger
}

// NewSwipeHandler creates a SwipeHandler.
func NewSwipeHandler(svc swipeService, logger *slog.Logger) *SwipeHandler {
	return &SwipeHandler{svc: svc, log: logger.With("handler", "swipe")}
}

type startSessionRequest struct {
	Category     string `json:"category"`
	City         string `json:"city"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	IncludeAdult bool   `json:"include_adult"`
}

type decideRequest struct {
	Direction string `json:"direction"`
}

type resetRequest struct {
	Policy string `json:"policy"`
}

type sessionResponse struct {
	State     string         `json:"state"`
	Current   *flyerResponse `json:"current,omitempty"`
	Remaining int            `json:"remaining"`
}

type decideResponse struct {
	Flyer flyerResponse `json:"flyer"`
	Saved bool          `json:"saved"`
	// SaveError is set when an accept decision advanced but could not be
	// persisted; the client should offer a retry via the save endpoint.
	SaveError *string `json:"save_error,omitempty"`
}

func toSessionResponse(s swipe.Snapshot) sessionResponse {
	resp := sessionResponse{
		State:     string(s.State),
		Remaining: s.Remaining,
	}
	if s.Current != nil {
		f := toFlyerResponse(*s.Current)
		resp.Current = &f
	}
	return resp
}

// Start handles POST /api/swipe/session. An empty body starts an
// unfiltered session.
func (h *SwipeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Start(r.Context(), swipe.StartInput{
		Criteria: feed.CriteriaInput{
			Category:     req.Category,
			City:         req.City,
			DateFrom:     req.DateFrom,
			DateTo:       req.DateTo,
			IncludeAdult: req.IncludeAdult,
		},
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(snap))
}

// State handles GET /api/swipe/session.
func (h *SwipeHandler) State(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.State(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(snap))
}

// Decide handles POST /api/swipe/decide.
func (h *SwipeHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	direction, err := swipe.ParseDirection(req.Direction)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Decide(r.Context(), direction)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := decideResponse{
		Flyer: toFlyerResponse(result.Flyer),
		Saved: result.Saved,
	}
	if result.SaveErr != nil {
		msg := result.SaveErr.Error()
		resp.SaveError = &msg
	}
	writeJSON(w, http.StatusOK, resp)
}

// Reset handles POST /api/swipe/reset. The default policy reloads a fresh
// queue; pass "KEEP_QUEUE" to re-browse the already-loaded set.
func (h *SwipeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	policy := swipe.ResetClearQueue
	if req.Policy != "" {
		p, err := swipe.ParseResetPolicy(req.Policy)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		policy = p
	}

	snap, err := h.svc.Reset(r.Context(), policy)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(snap))
}

// End handles DELETE /api/swipe/session.
func (h *SwipeHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.End(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
