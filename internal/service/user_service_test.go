package service

import (
	"context"
	"errors"
	"testing"

	"github.com/domi413/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureUser(t *testing.T) {
	t.Run("creates a user on first login", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewUserService(mockUserRepo, []string{"alice"})

		ctx := context.Background()
		mockUserRepo.On("GetByGithubID", mock.Anything, "12345").
			Return(nil, errors.New("user not found")).Once()
		mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
			user.ID = 1
			return user.Username == "alice" && user.Email == "alice@example.com" &&
				user.GithubID == "12345" && user.Role == "user"
		})).Return(nil).Once()

		user, err := svc.EnsureUser(ctx, GithubProfile{
			GithubID: "12345",
			Username: "alice",
			Email:    "alice@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("reuses the existing user on repeat logins", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewUserService(mockUserRepo, []string{"alice"})

		existing := &domain.User{ID: 1, Username: "alice", GithubID: "12345"}

		ctx := context.Background()
		mockUserRepo.On("GetByGithubID", mock.Anything, "12345").Return(existing, nil).Once()

		user, err := svc.EnsureUser(ctx, GithubProfile{GithubID: "12345", Username: "alice"})

		require.NoError(t, err)
		assert.Equal(t, existing, user)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects usernames outside the allow list before any write", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewUserService(mockUserRepo, []string{"alice"})

		ctx := context.Background()
		user, err := svc.EnsureUser(ctx, GithubProfile{GithubID: "99999", Username: "mallory"})

		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrNotAuthorized))
		mockUserRepo.AssertNotCalled(t, "GetByGithubID", mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("falls back to a noreply email when the profile has none", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewUserService(mockUserRepo, []string{"alice"})

		ctx := context.Background()
		mockUserRepo.On("GetByGithubID", mock.Anything, "12345").
			Return(nil, errors.New("user not found")).Once()
		mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
			return user.Email == "alice@users.noreply.github.com"
		})).Return(nil).Once()

		_, err := svc.EnsureUser(ctx, GithubProfile{GithubID: "12345", Username: "alice"})

		require.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})
}

func TestUserService_GetByID(t *testing.T) {
	t.Run("maps a missing row to NOT_FOUND", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewUserService(mockUserRepo, nil)

		ctx := context.Background()
		mockUserRepo.On("GetByID", mock.Anything, int64(99)).
			Return(nil, errors.New("user not found")).Once()

		user, err := svc.GetByID(ctx, 99)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
