package service

import (
	"context"
	"time"

	"github.com/domi413/worklog/internal/domain"
)

// ReportService is the read-side aggregator over the ledger and the issue
// projections. Both views share one fetch-and-filter path, so identical
// inputs always produce identical row sets.
type ReportService interface {
	// WeeklyAggregate groups the week's entries by "{project} — {issue}"
	// into chart-ready per-day minute arrays.
	WeeklyAggregate(ctx context.Context, weekStart time.Time, filter domain.LedgerFilter) (*domain.WeeklyChart, error)

	// WeeklyTable emits one row per entry plus the total minutes for the
	// week, for tabular or PDF rendering.
	WeeklyTable(ctx context.Context, weekStart time.Time, filter domain.LedgerFilter) (*domain.WeeklyTable, error)
}

// MondayOfWeek returns the Monday of the week containing t, as a calendar
// date. Weekly views default to it when no week start is given.
func MondayOfWeek(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
