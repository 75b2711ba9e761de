package service

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

// GithubProfile is what the OAuth callback learns about the logging-in user.
type GithubProfile struct {
	GithubID string
	Username string
	Email    string
}

// UserService owns the whitelisted user directory. Users are created on first
// successful login and are immutable afterwards except for their role.
type UserService interface {
	// EnsureUser enforces the login whitelist and returns the existing user
	// for the GitHub identity, creating one on first login.
	EnsureUser(ctx context.Context, profile GithubProfile) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
