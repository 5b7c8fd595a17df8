package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// snapshotService defines the minimal interface needed by SnapshotHandler.
type snapshotService interface {
	Export(ctx context.Context) *domain.Snapshot
	Import(ctx context.Context, snap *domain.Snapshot) error
}

// SnapshotHandler serves the export/import endpoints.
type SnapshotHandler struct {
	svc snapshotService
	log *slog.Logger
}

// NewSnapshotHandler creates a SnapshotHandler.
func NewSnapshotHandler(svc snapshotService, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{svc: svc, log: logger.With("handler", "snapshot")}
}

// Export handles GET /api/export.
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Export(r.Context()))
}

// Import handles POST /api/import.
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	var snap domain.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Import(r.Context(), &snap); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
