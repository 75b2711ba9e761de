package server

import (
	"net/http"

	"github.com/domi413/worklog/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /auth/github/login", h.Login)
	mux.HandleFunc("GET /auth/github/callback", h.Callback)
	mux.HandleFunc("GET /auth/me", h.RequireUser(h.Me))

	mux.HandleFunc("GET /api/users", h.RequireUser(h.ListUsers))
	mux.HandleFunc("GET /api/projects", h.RequireUser(h.ListProjects))
	mux.HandleFunc("GET /api/issues", h.RequireUser(h.ListIssues))
	mux.HandleFunc("GET /api/issues/{id}", h.RequireUser(h.GetIssue))
	mux.HandleFunc("GET /api/issues/by-gh/{owner}/{repo}/{number}", h.RequireUser(h.GetIssueByRepo))

	mux.HandleFunc("POST /api/issues/{id}/time-entries", h.RequireUser(h.CreateTimeEntry))
	mux.HandleFunc("GET /api/time-entries", h.RequireUser(h.ListTimeEntries))
	mux.HandleFunc("DELETE /api/time-entries/{id}", h.RequireUser(h.DeleteTimeEntry))

	mux.HandleFunc("POST /api/issues/{id}/timer/start", h.RequireUser(h.StartTimer))
	mux.HandleFunc("POST /api/timer/stop", h.RequireUser(h.StopTimer))
	mux.HandleFunc("GET /api/timer/status", h.RequireUser(h.TimerStatus))

	mux.HandleFunc("GET /api/reports/week", h.RequireUser(h.WeekReport))
	mux.HandleFunc("GET /api/reports/week.pdf", h.RequireUser(h.WeekReportPDF))

	mux.HandleFunc("POST /api/github/refresh", h.RequireUser(h.Refresh))
}
