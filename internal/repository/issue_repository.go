package repository

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

// IssueFilter narrows issue listings. Label and assignee are evaluated in
// process by the caller since labels are a set-valued attribute.
type IssueFilter struct {
	ProjectID *int64
	State     string
}

type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) error
	// Update overwrites the mutable fields of an existing issue row.
	Update(ctx context.Context, issue *domain.Issue) error
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	GetByProjectAndNumber(ctx context.Context, projectID int64, number int) (*domain.Issue, error)
	List(ctx context.Context, filter IssueFilter) ([]*domain.Issue, error)
	// UpsertBatch inserts or updates every issue by (project, github number)
	// in a single transaction; either all writes commit or none do. Existing
	// rows keep their id and project binding, mutable fields are overwritten.
	UpsertBatch(ctx context.Context, projectID int64, issues []*domain.Issue) (created, updated int, err error)
}
