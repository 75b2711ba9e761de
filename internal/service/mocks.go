package service

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/github"
	"github.com/domi413/worklog/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByGithubID(ctx context.Context, githubID string) (*domain.User, error) {
	args := m.Called(ctx, githubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByRepo(ctx context.Context, githubRepo string) (*domain.Project, error) {
	args := m.Called(ctx, githubRepo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) Update(ctx context.Context, issue *domain.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *MockIssueRepository) GetByProjectAndNumber(ctx context.Context, projectID int64, number int) (*domain.Issue, error) {
	args := m.Called(ctx, projectID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *MockIssueRepository) List(ctx context.Context, filter repository.IssueFilter) ([]*domain.Issue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Issue), args.Error(1)
}

func (m *MockIssueRepository) UpsertBatch(ctx context.Context, projectID int64, issues []*domain.Issue) (int, int, error) {
	args := m.Called(ctx, projectID, issues)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) ListRows(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LedgerRow), args.Error(1)
}

type MockTimerRepository struct {
	mock.Mock
}

func (m *MockTimerRepository) StartExclusive(ctx context.Context, timer *domain.Timer) error {
	args := m.Called(ctx, timer)
	return args.Error(0)
}

func (m *MockTimerRepository) StopRunning(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTimerRepository) GetRunningByUser(ctx context.Context, userID int64) (*domain.Timer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timer), args.Error(1)
}

type MockIssueLister struct {
	mock.Mock
}

func (m *MockIssueLister) ListRepoIssues(ctx context.Context, owner, name string) ([]*github.RepoIssue, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*github.RepoIssue), args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Append(ctx context.Context, userID, issueID int64, input AppendInput) (*domain.TimeEntry, error) {
	args := m.Called(ctx, userID, issueID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockLedgerService) Query(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LedgerRow), args.Error(1)
}

func (m *MockLedgerService) Delete(ctx context.Context, entryID, requestingUserID int64) error {
	args := m.Called(ctx, entryID, requestingUserID)
	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)
var _ repository.ProjectRepository = (*MockProjectRepository)(nil)
var _ repository.IssueRepository = (*MockIssueRepository)(nil)
var _ repository.TimeEntryRepository = (*MockTimeEntryRepository)(nil)
var _ repository.TimerRepository = (*MockTimerRepository)(nil)
var _ github.IssueLister = (*MockIssueLister)(nil)
var _ LedgerService = (*MockLedgerService)(nil)
