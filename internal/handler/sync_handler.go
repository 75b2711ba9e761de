package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/domi413/worklog/internal/domain"
)

// Refresh runs a synchronous sync over the requested repositories (the
// configured defaults when the body names none). The response is always 200;
// per-repo failures are reported in the body, not the status code.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	results := h.syncService.SyncAll(r.Context(), req.Repos)

	h.writeJSON(w, http.StatusOK, RefreshResponse{
		Results: domainSyncResultsToHTTP(results),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
