package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/service"
)

func (h *Handler) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	issueID, err := parsePathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	input := service.AppendInput{
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.Date != "" {
		date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
		if err != nil {
			h.handleError(w, domain.NewValidationError("date must be formatted as YYYY-MM-DD"))
			return
		}
		input.Date = &date
	}

	user := userFromContext(r.Context())
	entry, err := h.ledgerService.Append(r.Context(), user.ID, issueID, input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainEntryToHTTP(entry))
}

func (h *Handler) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := ledgerFilterFromQuery(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	rows, err := h.ledgerService.Query(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainLedgerRowsToHTTP(rows))
}

func (h *Handler) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := parsePathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	user := userFromContext(r.Context())
	if err := h.ledgerService.Delete(r.Context(), entryID, user.ID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ledgerFilterFromQuery parses the shared filter surface of the ledger and
// report endpoints: week, project_id, user_id, label, assignee.
func ledgerFilterFromQuery(r *http.Request) (domain.LedgerFilter, error) {
	query := r.URL.Query()

	var filter domain.LedgerFilter
	if raw := query.Get("week"); raw != "" {
		week, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return filter, domain.NewValidationError("week must be formatted as YYYY-MM-DD")
		}
		filter.WeekStart = &week
	}
	if raw := query.Get("project_id"); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, domain.NewValidationError("project_id must be a number")
		}
		filter.ProjectID = &projectID
	}
	if raw := query.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, domain.NewValidationError("user_id must be a number")
		}
		filter.UserID = &userID
	}
	filter.Label = query.Get("label")
	filter.Assignee = query.Get("assignee")

	return filter, nil
}
