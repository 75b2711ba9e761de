package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/domi413/worklog/internal/domain"
)

func (h *Handler) StartTimer(w http.ResponseWriter, r *http.Request) {
	issueID, err := parsePathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	user := userFromContext(r.Context())
	timer, err := h.timerService.Start(r.Context(), user.ID, issueID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, StartTimerResponse{
		TimerID:   timer.ID,
		IssueID:   timer.IssueID,
		StartedAt: timer.StartedAt.Format(time.RFC3339),
	})
}

func (h *Handler) StopTimer(w http.ResponseWriter, r *http.Request) {
	// The body is optional; stopping without notes is the common case.
	var req StopTimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	user := userFromContext(r.Context())
	result, err := h.timerService.Stop(r.Context(), user.ID, req.Notes)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StopTimerResponse{
		DurationMinutes: result.DurationMinutes,
		EntryID:         result.EntryID,
	})
}

func (h *Handler) TimerStatus(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	status, err := h.timerService.Status(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TimerStatusResponse{
		Running:        status.Running,
		IssueID:        status.IssueID,
		IssueTitle:     status.IssueTitle,
		ElapsedSeconds: status.ElapsedSeconds,
	})
}
