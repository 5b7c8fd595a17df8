package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/openclaw/lifeos-server/internal/domain"
	"github.com/openclaw/lifeos-server/internal/memory"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Recent(ctx context.Context, limit int) []domain.ActivityEntry
}

// memoryJournal defines the read surface of the Markdown journal.
type memoryJournal interface {
	Today() (string, error)
	Main() (string, error)
	TodayActivities() ([]memory.Activity, error)
}

// ActivityHandler serves the activity feed and memory journal endpoints.
type ActivityHandler struct {
	svc     activityService
	journal memoryJournal
	log     *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, journal memoryJournal, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		svc:     svc,
		journal: journal,
		log:     logger.With("handler", "activity"),
	}
}

// Recent handles GET /api/activity?limit=N. Most recent first; an absent or
// invalid limit falls back to the service default.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, h.svc.Recent(r.Context(), limit))
}

type memoryResponse struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type memoryActivitiesResponse struct {
	Type       string            `json:"type"`
	Activities []memory.Activity `json:"activities"`
}

// Memory handles GET /api/memory?type=today|main|activities.
func (h *ActivityHandler) Memory(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = "today"
	}

	switch kind {
	case "today":
		content, err := h.journal.Today()
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, memoryResponse{Type: kind, Content: content})

	case "main":
		content, err := h.journal.Main()
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeJSON(w, http.StatusOK, memoryResponse{Type: kind, Content: ""})
				return
			}
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, memoryResponse{Type: kind, Content: content})

	case "activities":
		activities, err := h.journal.TodayActivities()
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, memoryActivitiesResponse{Type: kind, Activities: activities})

	default:
		writeError(w, http.StatusBadRequest, "type must be today, main, or activities")
	}
}
