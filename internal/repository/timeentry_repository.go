package repository

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	// ListRows returns entries joined with issue title, project name and
	// username. Week/project/user filters are pushed to the query; label and
	// assignee filtering happens in the service layer.
	ListRows(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerRow, error)
}
