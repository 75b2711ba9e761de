package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

type issueRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewIssueRepository(db *sql.DB) *issueRepository {
	return &issueRepository{db: db, executor: db}
}

// NewIssueRepositoryWithTx binds the repository to a transaction so a whole
// sync pass can be committed together.
func NewIssueRepositoryWithTx(tx *sql.Tx) *issueRepository {
	return &issueRepository{executor: tx}
}

// UpsertBatch writes all issues of one sync pass inside a single transaction.
func (r *issueRepository) UpsertBatch(ctx context.Context, projectID int64, issues []*domain.Issue) (int, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	txRepo := NewIssueRepositoryWithTx(tx)
	var created, updated int
	for _, issue := range issues {
		if issue.GithubNumber == nil {
			continue
		}

		existing, err := txRepo.GetByProjectAndNumber(ctx, projectID, *issue.GithubNumber)
		if err != nil && err.Error() != "issue not found" {
			return 0, 0, err
		}

		if existing != nil {
			existing.Title = issue.Title
			existing.Body = issue.Body
			existing.URL = issue.URL
			existing.State = issue.State
			existing.Assignee = issue.Assignee
			existing.Labels = issue.Labels
			if err := txRepo.Update(ctx, existing); err != nil {
				return 0, 0, err
			}
			issue.ID = existing.ID
			issue.ProjectID = existing.ProjectID
			updated++
			continue
		}

		issue.ProjectID = projectID
		if err := txRepo.Create(ctx, issue); err != nil {
			return 0, 0, err
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}

	return created, updated, nil
}

func labelsToJSON(labels []string) ([]byte, error) {
	if labels == nil {
		labels = []string{}
	}
	return json.Marshal(labels)
}

func labelsFromJSON(raw []byte) ([]string, error) {
	var labels []string
	if len(raw) == 0 {
		return labels, nil
	}
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("failed to decode labels: %w", err)
	}
	return labels, nil
}

func (r *issueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	rawLabels, err := labelsToJSON(issue.Labels)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO issues (project_id, github_number, title, body, url, state, assignee, labels)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		issue.ProjectID,
		issue.GithubNumber,
		issue.Title,
		issue.Body,
		issue.URL,
		issue.State,
		issue.Assignee,
		rawLabels,
	).Scan(&issue.ID)
}

func (r *issueRepository) Update(ctx context.Context, issue *domain.Issue) error {
	rawLabels, err := labelsToJSON(issue.Labels)
	if err != nil {
		return err
	}

	query := `
		UPDATE issues
		SET title = $2, body = $3, url = $4, state = $5, assignee = $6, labels = $7
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		issue.ID,
		issue.Title,
		issue.Body,
		issue.URL,
		issue.State,
		issue.Assignee,
		rawLabels,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("issue not found")
	}

	return nil
}

func scanIssue(scan func(dest ...any) error) (*domain.Issue, error) {
	issue := &domain.Issue{}
	var rawLabels []byte
	err := scan(
		&issue.ID,
		&issue.ProjectID,
		&issue.GithubNumber,
		&issue.Title,
		&issue.Body,
		&issue.URL,
		&issue.State,
		&issue.Assignee,
		&rawLabels,
	)
	if err != nil {
		return nil, err
	}

	if issue.Labels, err = labelsFromJSON(rawLabels); err != nil {
		return nil, err
	}

	return issue, nil
}

const issueColumns = `id, project_id, github_number, title, body, url, state, assignee, labels`

func (r *issueRepository) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = $1`

	issue, err := scanIssue(r.executor.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("issue not found")
		}
		return nil, err
	}

	return issue, nil
}

func (r *issueRepository) GetByProjectAndNumber(ctx context.Context, projectID int64, number int) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE project_id = $1 AND github_number = $2`

	issue, err := scanIssue(r.executor.QueryRowContext(ctx, query, projectID, number).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("issue not found")
		}
		return nil, err
	}

	return issue, nil
}

func (r *issueRepository) List(ctx context.Context, filter repository.IssueFilter) ([]*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues`

	var args []any
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(" WHERE project_id = $%d", len(args))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE state = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND state = $%d", len(args))
		}
	}
	query += " ORDER BY id"

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		issue, err := scanIssue(rows.Scan)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}
