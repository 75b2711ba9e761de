package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/github"
	"github.com/domi413/worklog/internal/logging"
	"github.com/domi413/worklog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeIssueStore is an in-memory IssueRepository used to exercise the
// sync/store contract, in particular upsert idempotency.
type fakeIssueStore struct {
	mu     sync.Mutex
	nextID int64
	issues map[int64]*domain.Issue
}

func newFakeIssueStore() *fakeIssueStore {
	return &fakeIssueStore{nextID: 1, issues: make(map[int64]*domain.Issue)}
}

func (f *fakeIssueStore) Create(ctx context.Context, issue *domain.Issue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	issue.ID = f.nextID
	f.nextID++
	clone := *issue
	f.issues[issue.ID] = &clone
	return nil
}

func (f *fakeIssueStore) Update(ctx context.Context, issue *domain.Issue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.issues[issue.ID]; !ok {
		return errors.New("issue not found")
	}
	clone := *issue
	f.issues[issue.ID] = &clone
	return nil
}

func (f *fakeIssueStore) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	issue, ok := f.issues[id]
	if !ok {
		return nil, errors.New("issue not found")
	}
	clone := *issue
	return &clone, nil
}

func (f *fakeIssueStore) GetByProjectAndNumber(ctx context.Context, projectID int64, number int) (*domain.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, issue := range f.issues {
		if issue.ProjectID == projectID && issue.GithubNumber != nil && *issue.GithubNumber == number {
			clone := *issue
			return &clone, nil
		}
	}
	return nil, errors.New("issue not found")
}

func (f *fakeIssueStore) List(ctx context.Context, filter repository.IssueFilter) ([]*domain.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Issue
	for _, issue := range f.issues {
		clone := *issue
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeIssueStore) UpsertBatch(ctx context.Context, projectID int64, issues []*domain.Issue) (int, int, error) {
	var created, updated int
	for _, issue := range issues {
		if issue.GithubNumber == nil {
			continue
		}
		existing, err := f.GetByProjectAndNumber(ctx, projectID, *issue.GithubNumber)
		if err == nil {
			existing.Title = issue.Title
			existing.Body = issue.Body
			existing.URL = issue.URL
			existing.State = issue.State
			existing.Assignee = issue.Assignee
			existing.Labels = issue.Labels
			if err := f.Update(ctx, existing); err != nil {
				return 0, 0, err
			}
			updated++
			continue
		}
		issue.ProjectID = projectID
		if err := f.Create(ctx, issue); err != nil {
			return 0, 0, err
		}
		created++
	}
	return created, updated, nil
}

func TestSyncService_SyncRepo(t *testing.T) {
	t.Run("creates the project lazily and mirrors issues", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		svc := NewSyncService(mockLister, mockProjectRepo, store, nil, discardLogger())

		items := []*github.RepoIssue{
			{Number: 1, Title: "First issue", State: "open", Labels: []string{"bug"}},
			{Number: 2, Title: "Second issue", State: "closed"},
		}

		ctx := context.Background()
		mockProjectRepo.On("GetByRepo", mock.Anything, "domi413/vhdl-fmt").
			Return(nil, errors.New("project not found")).Once()
		mockProjectRepo.On("Create", mock.Anything, mock.MatchedBy(func(project *domain.Project) bool {
			project.ID = 3
			return project.Name == "vhdl-fmt" && project.GithubRepo == "domi413/vhdl-fmt"
		})).Return(nil).Once()
		mockLister.On("ListRepoIssues", mock.Anything, "domi413", "vhdl-fmt").Return(items, nil).Once()

		result := svc.SyncRepo(ctx, "domi413/vhdl-fmt")

		require.NoError(t, result.Err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Updated)
		mockProjectRepo.AssertExpectations(t)
	})

	t.Run("re-syncing unchanged upstream data is idempotent", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		svc := NewSyncService(mockLister, mockProjectRepo, store, nil, discardLogger())

		project := &domain.Project{ID: 3, Name: "vhdl-fmt", GithubRepo: "domi413/vhdl-fmt"}
		alice := "alice"
		items := []*github.RepoIssue{
			{Number: 1, Title: "First issue", State: "open", Labels: []string{"bug"}, Assignee: &alice},
		}

		ctx := context.Background()
		mockProjectRepo.On("GetByRepo", mock.Anything, "domi413/vhdl-fmt").Return(project, nil).Twice()
		mockLister.On("ListRepoIssues", mock.Anything, "domi413", "vhdl-fmt").Return(items, nil).Twice()

		first := svc.SyncRepo(ctx, "domi413/vhdl-fmt")
		require.NoError(t, first.Err)
		afterFirst, err := store.List(ctx, repository.IssueFilter{})
		require.NoError(t, err)

		second := svc.SyncRepo(ctx, "domi413/vhdl-fmt")
		require.NoError(t, second.Err)
		afterSecond, err := store.List(ctx, repository.IssueFilter{})
		require.NoError(t, err)

		require.Len(t, afterSecond, len(afterFirst))
		assert.Equal(t, afterFirst[0], afterSecond[0])
		assert.Equal(t, 1, second.Updated)
		assert.Equal(t, 0, second.Created)
	})

	t.Run("pull request items never create issue rows", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		svc := NewSyncService(mockLister, mockProjectRepo, store, nil, discardLogger())

		project := &domain.Project{ID: 3, Name: "vhdl-fmt", GithubRepo: "domi413/vhdl-fmt"}
		items := []*github.RepoIssue{
			{Number: 1, Title: "Real issue", State: "open"},
			{Number: 2, Title: "A pull request", State: "open", PullRequest: true},
		}

		ctx := context.Background()
		mockProjectRepo.On("GetByRepo", mock.Anything, "domi413/vhdl-fmt").Return(project, nil).Once()
		mockLister.On("ListRepoIssues", mock.Anything, "domi413", "vhdl-fmt").Return(items, nil).Once()

		result := svc.SyncRepo(ctx, "domi413/vhdl-fmt")

		require.NoError(t, result.Err)
		assert.Equal(t, 1, result.Created)

		issues, err := store.List(ctx, repository.IssueFilter{})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "Real issue", issues[0].Title)
	})

	t.Run("a listing failure aborts issue writes but keeps the project", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		svc := NewSyncService(mockLister, mockProjectRepo, store, nil, discardLogger())

		ctx := context.Background()
		mockProjectRepo.On("GetByRepo", mock.Anything, "domi413/vhdl-fmt").
			Return(nil, errors.New("project not found")).Once()
		mockProjectRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		mockLister.On("ListRepoIssues", mock.Anything, "domi413", "vhdl-fmt").
			Return(nil, errors.New("502 bad gateway")).Once()

		result := svc.SyncRepo(ctx, "domi413/vhdl-fmt")

		require.Error(t, result.Err)
		issues, err := store.List(ctx, repository.IssueFilter{})
		require.NoError(t, err)
		assert.Empty(t, issues)
		// The lazily created project is a preserved artifact of the failed run.
		mockProjectRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed repository identifiers", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		svc := NewSyncService(mockLister, mockProjectRepo, store, nil, discardLogger())

		result := svc.SyncRepo(context.Background(), "not-a-repo")

		require.Error(t, result.Err)
		mockProjectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSyncService_SyncAll(t *testing.T) {
	t.Run("a failing repository does not prevent the next one", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		svc := NewSyncService(mockLister, mockProjectRepo, store, nil, discardLogger())

		projectB := &domain.Project{ID: 4, Name: "repo-b", GithubRepo: "owner/repo-b"}

		ctx := context.Background()
		mockProjectRepo.On("GetByRepo", mock.Anything, "owner/repo-a").
			Return(nil, errors.New("project not found")).Once()
		mockProjectRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		mockLister.On("ListRepoIssues", mock.Anything, "owner", "repo-a").
			Return(nil, errors.New("503 unavailable")).Once()

		mockProjectRepo.On("GetByRepo", mock.Anything, "owner/repo-b").Return(projectB, nil).Once()
		mockLister.On("ListRepoIssues", mock.Anything, "owner", "repo-b").
			Return([]*github.RepoIssue{{Number: 1, Title: "B issue", State: "open"}}, nil).Once()

		results := svc.SyncAll(ctx, []string{"owner/repo-a", "owner/repo-b"})

		require.Len(t, results, 2)
		assert.True(t, results[0].Failed())
		assert.False(t, results[1].Failed())
		assert.Equal(t, 1, results[1].Created)

		issues, err := store.List(ctx, repository.IssueFilter{})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "B issue", issues[0].Title)
	})

	t.Run("nil repo list falls back to the configured default", func(t *testing.T) {
		mockLister := new(MockIssueLister)
		mockProjectRepo := new(MockProjectRepository)
		store := newFakeIssueStore()

		project := &domain.Project{ID: 3, Name: "vhdl-fmt", GithubRepo: "domi413/vhdl-fmt"}
		svc := NewSyncService(mockLister, mockProjectRepo, store, []string{"domi413/vhdl-fmt"}, discardLogger())

		ctx := context.Background()
		mockProjectRepo.On("GetByRepo", mock.Anything, "domi413/vhdl-fmt").Return(project, nil).Once()
		mockLister.On("ListRepoIssues", mock.Anything, "domi413", "vhdl-fmt").
			Return([]*github.RepoIssue{}, nil).Once()

		results := svc.SyncAll(ctx, nil)

		require.Len(t, results, 1)
		assert.Equal(t, "domi413/vhdl-fmt", results[0].Repo)
		assert.False(t, results[0].Failed())
	})
}
