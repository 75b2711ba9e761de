package service

import (
	"context"
	"fmt"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	allowed  map[string]struct{}
}

func NewUserService(userRepo repository.UserRepository, allowedUsers []string) UserService {
	allowed := make(map[string]struct{}, len(allowedUsers))
	for _, username := range allowedUsers {
		allowed[username] = struct{}{}
	}
	return &userService{
		userRepo: userRepo,
		allowed:  allowed,
	}
}

func (s *userService) EnsureUser(ctx context.Context, profile GithubProfile) (*domain.User, error) {
	// The whitelist is enforced before any user row is created.
	if _, ok := s.allowed[profile.Username]; !ok {
		return nil, domain.ErrNotAuthorized
	}

	user, err := s.userRepo.GetByGithubID(ctx, profile.GithubID)
	if err == nil {
		return user, nil
	}
	if err.Error() != "user not found" {
		return nil, err
	}

	email := profile.Email
	if email == "" {
		email = fmt.Sprintf("%s@users.noreply.github.com", profile.Username)
	}

	user = &domain.User{
		Username: profile.Username,
		Email:    email,
		GithubID: profile.GithubID,
		Role:     "user",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
