package service

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

// IssueService reads the synced issue/project projections. It never writes
// them; the sync engine exclusively owns their mutable fields.
type IssueService interface {
	ListIssues(ctx context.Context, filter repository.IssueFilter, label, assignee string) ([]*domain.Issue, error)
	GetIssue(ctx context.Context, id int64) (*domain.Issue, error)
	// GetIssueByRepo resolves an issue by its external coordinates
	// (owner/name + issue number).
	GetIssueByRepo(ctx context.Context, owner, name string, number int) (*domain.Issue, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
}
