package domain

import "time"

// WeeklyChart is the chart-ready weekly aggregate: seven ISO day labels and
// one dataset per "{project} — {issue}" key, each a 7-slot minute array
// indexed by day offset from the week start. Dataset order is first-seen.
type WeeklyChart struct {
	Labels   []string
	Datasets []ChartDataset
}

type ChartDataset struct {
	Label string
	Data  [7]int
}

// ReportRow is one weekly-table line handed to the renderer.
type ReportRow struct {
	Date            time.Time
	Username        string
	ProjectName     string
	IssueTitle      string
	DurationMinutes int
}

// WeeklyTable is the tabular weekly view plus the computed total.
type WeeklyTable struct {
	WeekStart    time.Time
	Rows         []ReportRow
	TotalMinutes int
}
