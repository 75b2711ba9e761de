// Package pdf renders report views into PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/domi413/worklog/internal/domain"
	"github.com/go-pdf/fpdf"
)

const (
	colDate    = 28.0
	colUser    = 45.0
	colIssue   = 92.0
	colMinutes = 25.0
	rowHeight  = 7.0

	// Rows past this Y start a fresh page.
	pageBreakY = 270.0
)

// RenderWeekly renders the weekly table as an A4 PDF: a title line, a
// Date/User/Issue/Minutes grid and a closing total row. Long usernames and
// issue titles are truncated to keep the grid aligned.
func RenderWeekly(table *domain.WeeklyTable) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Weekly time report", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 10, fmt.Sprintf("Weekly time report, week of %s", table.WeekStart.Format("2006-01-02")))
	doc.Ln(12)

	writeHeader(doc)

	doc.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		if doc.GetY() > pageBreakY {
			doc.AddPage()
			writeHeader(doc)
			doc.SetFont("Helvetica", "", 9)
		}

		issue := fmt.Sprintf("%s: %s", row.ProjectName, truncate(row.IssueTitle, 40))
		doc.CellFormat(colDate, rowHeight, row.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		doc.CellFormat(colUser, rowHeight, truncate(row.Username, 20), "1", 0, "L", false, 0, "")
		doc.CellFormat(colIssue, rowHeight, issue, "1", 0, "L", false, 0, "")
		doc.CellFormat(colMinutes, rowHeight, fmt.Sprintf("%d", row.DurationMinutes), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(colDate+colUser+colIssue, rowHeight, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(colMinutes, rowHeight, fmt.Sprintf("%d", table.TotalMinutes), "1", 0, "R", false, 0, "")
	doc.Ln(-1)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render weekly report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(colDate, rowHeight, "Date", "1", 0, "L", false, 0, "")
	doc.CellFormat(colUser, rowHeight, "User", "1", 0, "L", false, 0, "")
	doc.CellFormat(colIssue, rowHeight, "Issue", "1", 0, "L", false, 0, "")
	doc.CellFormat(colMinutes, rowHeight, "Minutes", "1", 0, "R", false, 0, "")
	doc.Ln(-1)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
