package service

import (
	"context"
	"fmt"
	"time"

	"github.com/domi413/worklog/internal/domain"
)

type reportService struct {
	ledger LedgerService
}

func NewReportService(ledger LedgerService) ReportService {
	return &reportService{ledger: ledger}
}

// weekRows is the shared fetch path of both weekly views.
func (s *reportService) weekRows(ctx context.Context, weekStart time.Time, filter domain.LedgerFilter) ([]*domain.LedgerRow, error) {
	week := midnightUTC(weekStart)
	filter.WeekStart = &week
	return s.ledger.Query(ctx, filter)
}

func (s *reportService) WeeklyAggregate(ctx context.Context, weekStart time.Time, filter domain.LedgerFilter) (*domain.WeeklyChart, error) {
	rows, err := s.weekRows(ctx, weekStart, filter)
	if err != nil {
		return nil, err
	}

	week := midnightUTC(weekStart)
	chart := &domain.WeeklyChart{Labels: make([]string, 7)}
	for i := range chart.Labels {
		chart.Labels[i] = week.AddDate(0, 0, i).Format("2006-01-02")
	}

	// Datasets keep first-seen key order.
	index := make(map[string]int)
	for _, row := range rows {
		day := int(row.Entry.Date.Sub(week).Hours() / 24)
		if day < 0 || day >= 7 {
			continue
		}

		key := fmt.Sprintf("%s — %s", row.ProjectName, row.IssueTitle)
		pos, ok := index[key]
		if !ok {
			pos = len(chart.Datasets)
			index[key] = pos
			chart.Datasets = append(chart.Datasets, domain.ChartDataset{Label: key})
		}
		chart.Datasets[pos].Data[day] += row.Entry.DurationMinutes
	}

	return chart, nil
}

func (s *reportService) WeeklyTable(ctx context.Context, weekStart time.Time, filter domain.LedgerFilter) (*domain.WeeklyTable, error) {
	rows, err := s.weekRows(ctx, weekStart, filter)
	if err != nil {
		return nil, err
	}

	table := &domain.WeeklyTable{
		WeekStart: midnightUTC(weekStart),
		Rows:      make([]domain.ReportRow, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, domain.ReportRow{
			Date:            row.Entry.Date,
			Username:        row.Username,
			ProjectName:     row.ProjectName,
			IssueTitle:      row.IssueTitle,
			DurationMinutes: row.Entry.DurationMinutes,
		})
		table.TotalMinutes += row.Entry.DurationMinutes
	}

	return table, nil
}
