package repository

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByRepo(ctx context.Context, githubRepo string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}
