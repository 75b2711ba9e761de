package service

import (
	"context"
	"time"

	"github.com/domi413/worklog/internal/domain"
)

// AppendInput is the validated payload for creating a ledger entry. Date is
// parsed and checked at the HTTP boundary; nil means "today".
type AppendInput struct {
	DurationMinutes int
	Date            *time.Time
	Notes           *string
}

// LedgerService owns create/query/delete of recorded time entries.
type LedgerService interface {
	// Append records a time entry against an issue for the given user.
	Append(ctx context.Context, userID, issueID int64, input AppendInput) (*domain.TimeEntry, error)

	// Query returns ledger rows matching the filter, joined with display
	// fields. Label and assignee filters are evaluated against each entry's
	// issue.
	Query(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerRow, error)

	// Delete removes an entry permanently. Only the owning user may delete.
	Delete(ctx context.Context, entryID, requestingUserID int64) error
}
