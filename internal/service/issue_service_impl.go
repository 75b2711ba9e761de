package service

import (
	"context"
	"fmt"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

type issueService struct {
	issueRepo   repository.IssueRepository
	projectRepo repository.ProjectRepository
}

func NewIssueService(
	issueRepo repository.IssueRepository,
	projectRepo repository.ProjectRepository,
) IssueService {
	return &issueService{
		issueRepo:   issueRepo,
		projectRepo: projectRepo,
	}
}

func (s *issueService) ListIssues(ctx context.Context, filter repository.IssueFilter, label, assignee string) ([]*domain.Issue, error) {
	issues, err := s.issueRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if label == "" && assignee == "" {
		return issues, nil
	}

	filtered := make([]*domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if label != "" && !issue.HasLabel(label) {
			continue
		}
		if assignee != "" && (issue.Assignee == nil || *issue.Assignee != assignee) {
			continue
		}
		filtered = append(filtered, issue)
	}

	return filtered, nil
}

func (s *issueService) GetIssue(ctx context.Context, id int64) (*domain.Issue, error) {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "issue not found" {
			return nil, domain.NewNotFoundError("issue")
		}
		return nil, err
	}
	return issue, nil
}

func (s *issueService) GetIssueByRepo(ctx context.Context, owner, name string, number int) (*domain.Issue, error) {
	repo := fmt.Sprintf("%s/%s", owner, name)
	project, err := s.projectRepo.GetByRepo(ctx, repo)
	if err != nil {
		if err.Error() == "project not found" {
			return nil, domain.NewNotFoundError("project")
		}
		return nil, err
	}

	issue, err := s.issueRepo.GetByProjectAndNumber(ctx, project.ID, number)
	if err != nil {
		if err.Error() == "issue not found" {
			return nil, domain.NewNotFoundError("issue")
		}
		return nil, err
	}

	return issue, nil
}

func (s *issueService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.projectRepo.List(ctx)
}
