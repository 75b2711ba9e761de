package handler

import (
	"net/http"
	"time"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/pdf"
	"github.com/domi413/worklog/internal/service"
)

// reportWeek resolves the week the report endpoints operate on. Without a
// week parameter it is the Monday of the current week.
func reportWeek(r *http.Request) (time.Time, domain.LedgerFilter, error) {
	filter, err := ledgerFilterFromQuery(r)
	if err != nil {
		return time.Time{}, filter, err
	}

	week := service.MondayOfWeek(time.Now())
	if filter.WeekStart != nil {
		week = *filter.WeekStart
		filter.WeekStart = nil
	}

	return week, filter, nil
}

func (h *Handler) WeekReport(w http.ResponseWriter, r *http.Request) {
	week, filter, err := reportWeek(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	chart, err := h.reportService.WeeklyAggregate(r.Context(), week, filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainChartToHTTP(chart))
}

func (h *Handler) WeekReportPDF(w http.ResponseWriter, r *http.Request) {
	week, filter, err := reportWeek(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	table, err := h.reportService.WeeklyTable(r.Context(), week, filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	document, err := pdf.RenderWeekly(table)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="weekly-report-`+week.Format(dateLayout)+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
