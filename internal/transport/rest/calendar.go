package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/service/calendar"
)

// CalendarHandler serves per-flyer iCalendar downloads.
type CalendarHandler struct {
	feed feedService
	log  *slog.Logger
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(feed feedService, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{feed: feed, log: logger.With("handler", "calendar")}
}

// Download handles GET /api/flyers/{id}/calendar.ics.
func (h *CalendarHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed flyer id")
		return
	}

	flyer, err := h.feed.GetFlyer(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	payload, err := calendar.BuildICS(flyer)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "flyer-"+id.String()+".ics"))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(payload)) //nolint:errcheck
}
