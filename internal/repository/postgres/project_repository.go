package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/domi413/worklog/internal/domain"
)

type projectRepository struct {
	executor DBExecutor
}

func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{executor: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (name, github_repo)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id
	`

	return r.executor.QueryRowContext(ctx, query, project.Name, project.GithubRepo).
		Scan(&project.ID)
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `
		SELECT id, name, COALESCE(github_repo, '')
		FROM projects
		WHERE id = $1
	`

	project := &domain.Project{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.GithubRepo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("project not found")
		}
		return nil, err
	}

	return project, nil
}

func (r *projectRepository) GetByRepo(ctx context.Context, githubRepo string) (*domain.Project, error) {
	query := `
		SELECT id, name, COALESCE(github_repo, '')
		FROM projects
		WHERE github_repo = $1
	`

	project := &domain.Project{}
	err := r.executor.QueryRowContext(ctx, query, githubRepo).Scan(
		&project.ID,
		&project.Name,
		&project.GithubRepo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("project not found")
		}
		return nil, err
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	query := `
		SELECT id, name, COALESCE(github_repo, '')
		FROM projects
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		project := &domain.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.GithubRepo); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
