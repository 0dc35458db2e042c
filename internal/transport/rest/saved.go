package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

// savedService defines the minimal interface needed by SavedHandler.
type savedService interface {
	Save(ctx context.Context, flyerID uuid.UUID) error
	Unsave(ctx context.Context, flyerID uuid.UUID) error
	List(ctx context.Context) ([]domain.Flyer, error)
}

// SavedHandler serves the saved-flyers endpoints.
type SavedHandler struct {
	svc savedService
	log *slog.Logger
}

// NewSavedHandler creates a SavedHandler.
func NewSavedHandler(svc savedService, logger *slog.Logger) *SavedHandler {
	return &SavedHandler{svc: svc, log: logger.With("handler", "saved")}
}

// List handles GET /api/saved.
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	flyers, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"flyers": toFlyerResponses(flyers)})
}

// Save handles POST /api/flyers/{id}/save.
func (h *SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed flyer id")
		return
	}

	if err := h.svc.Save(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Unsave handles DELETE /api/flyers/{id}/save.
func (h *SavedHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed flyer id")
		return
	}

	if err := h.svc.Unsave(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unsaved"})
}
