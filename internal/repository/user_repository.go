package repository

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByGithubID(ctx context.Context, githubID string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
