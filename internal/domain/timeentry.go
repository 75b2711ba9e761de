package domain

import "time"

// TimeEntry is an immutable-once-created ledger record. Date is a calendar
// date (midnight UTC).
type TimeEntry struct {
	ID              int64
	UserID          int64
	ProjectID       int64
	IssueID         int64
	Date            time.Time
	DurationMinutes int
	Notes           *string
	CreatedAt       time.Time
}

// LedgerRow is a TimeEntry joined with display fields from the issue, project
// and user it belongs to. Labels and Assignee carry the issue attributes the
// label/assignee filters are evaluated against.
type LedgerRow struct {
	Entry       TimeEntry
	IssueTitle  string
	ProjectName string
	Username    string
	Labels      []string
	Assignee    *string
}

// LedgerFilter narrows ledger queries. Zero values mean "no filter"; WeekStart
// selects entries with date in [WeekStart, WeekStart+7d).
type LedgerFilter struct {
	WeekStart *time.Time
	ProjectID *int64
	UserID    *int64
	Label     string
	Assignee  string
}
