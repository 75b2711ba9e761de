package service

import (
	"context"
	"strings"
	"sync"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/github"
	"github.com/domi413/worklog/internal/logging"
	"github.com/domi413/worklog/internal/repository"
)

type syncService struct {
	lister       github.IssueLister
	projectRepo  repository.ProjectRepository
	issueRepo    repository.IssueRepository
	defaultRepos []string
	logger       logging.Logger

	// repoLocks serializes syncs per repository so a scheduled run and a
	// manual refresh cannot interleave writes on the same rows.
	mu        sync.Mutex
	repoLocks map[string]*sync.Mutex
}

func NewSyncService(
	lister github.IssueLister,
	projectRepo repository.ProjectRepository,
	issueRepo repository.IssueRepository,
	defaultRepos []string,
	logger logging.Logger,
) SyncService {
	return &syncService{
		lister:       lister,
		projectRepo:  projectRepo,
		issueRepo:    issueRepo,
		defaultRepos: defaultRepos,
		logger:       logger,
		repoLocks:    make(map[string]*sync.Mutex),
	}
}

func (s *syncService) lockRepo(repo string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.repoLocks[repo]
	if !ok {
		lock = &sync.Mutex{}
		s.repoLocks[repo] = lock
	}
	return lock
}

func (s *syncService) SyncRepo(ctx context.Context, repo string) domain.RepoSyncResult {
	lock := s.lockRepo(repo)
	lock.Lock()
	defer lock.Unlock()

	result := domain.RepoSyncResult{Repo: repo}

	owner, name, err := github.ParseRepo(repo)
	if err != nil {
		result.Err = err
		return result
	}

	// The project is created and committed up front. A page-fetch failure
	// below leaves it behind with zero issues; that partial state is kept,
	// not rolled back.
	project, err := s.ensureProject(ctx, repo, name)
	if err != nil {
		result.Err = err
		return result
	}

	items, err := s.lister.ListRepoIssues(ctx, owner, name)
	if err != nil {
		result.Err = err
		return result
	}

	issues := make([]*domain.Issue, 0, len(items))
	for _, item := range items {
		// The listing conflates issues and pull requests; PRs are skipped.
		if item.PullRequest {
			continue
		}
		number := item.Number
		issues = append(issues, &domain.Issue{
			ProjectID:    project.ID,
			GithubNumber: &number,
			Title:        item.Title,
			Body:         item.Body,
			URL:          item.URL,
			State:        item.State,
			Assignee:     item.Assignee,
			Labels:       item.Labels,
		})
	}

	created, updated, err := s.issueRepo.UpsertBatch(ctx, project.ID, issues)
	if err != nil {
		result.Err = err
		return result
	}

	result.Created = created
	result.Updated = updated
	return result
}

func (s *syncService) SyncAll(ctx context.Context, repos []string) []domain.RepoSyncResult {
	if repos == nil {
		repos = s.defaultRepos
	}

	results := make([]domain.RepoSyncResult, 0, len(repos))
	for _, repo := range repos {
		result := s.SyncRepo(ctx, repo)
		if result.Failed() {
			s.logger.Error(ctx, "repository sync failed", "repo", repo, "error", result.Err.Error())
		} else {
			s.logger.Info(ctx, "repository synced", "repo", repo,
				"created", result.Created, "updated", result.Updated)
		}
		results = append(results, result)
	}

	return results
}

func (s *syncService) ensureProject(ctx context.Context, repo, name string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByRepo(ctx, repo)
	if err == nil {
		return project, nil
	}
	if err.Error() != "project not found" {
		return nil, err
	}

	project = &domain.Project{
		Name:       trailingSegment(name),
		GithubRepo: repo,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "created project for repository", "repo", repo, "project", project.Name)
	return project, nil
}

func trailingSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
