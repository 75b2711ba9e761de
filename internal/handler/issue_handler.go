package handler

import (
	"net/http"
	"strconv"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

func parsePathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be a number")
	}
	return id, nil
}

func (h *Handler) ListIssues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.IssueFilter
	if raw := query.Get("project_id"); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.handleError(w, domain.NewValidationError("project_id must be a number"))
			return
		}
		filter.ProjectID = &projectID
	}
	filter.State = query.Get("state")

	issues, err := h.issueService.ListIssues(r.Context(), filter, query.Get("label"), query.Get("assignee"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainIssuesToHTTP(issues))
}

func (h *Handler) GetIssue(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	issue, err := h.issueService.GetIssue(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainIssueToHTTP(issue))
}

func (h *Handler) GetIssueByRepo(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		h.handleError(w, domain.NewValidationError("number must be a number"))
		return
	}

	issue, err := h.issueService.GetIssueByRepo(r.Context(), r.PathValue("owner"), r.PathValue("repo"), number)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainIssueToHTTP(issue))
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.issueService.ListProjects(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, domainProjectToHTTP(project))
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToHTTP(user))
	}

	h.writeJSON(w, http.StatusOK, result)
}
