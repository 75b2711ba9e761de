package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/domi413/worklog/internal/domain"
)

type timeEntryRepository struct {
	executor DBExecutor
}

func NewTimeEntryRepository(db *sql.DB) *timeEntryRepository {
	return &timeEntryRepository{executor: db}
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	query := `
		INSERT INTO time_entries (user_id, project_id, issue_id, entry_date, duration_minutes, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		entry.UserID,
		entry.ProjectID,
		entry.IssueID,
		entry.Date,
		entry.DurationMinutes,
		entry.Notes,
		time.Now(),
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	query := `
		SELECT id, user_id, project_id, issue_id, entry_date, duration_minutes, notes, created_at
		FROM time_entries
		WHERE id = $1
	`

	entry := &domain.TimeEntry{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ProjectID,
		&entry.IssueID,
		&entry.Date,
		&entry.DurationMinutes,
		&entry.Notes,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("time entry not found")
		}
		return nil, err
	}

	return entry, nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM time_entries WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("time entry not found")
	}

	return nil
}

func (r *timeEntryRepository) ListRows(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerRow, error) {
	query := `
		SELECT te.id, te.user_id, te.project_id, te.issue_id, te.entry_date,
		       te.duration_minutes, te.notes, te.created_at,
		       i.title, p.name, u.username, i.labels, i.assignee
		FROM time_entries te
		JOIN issues i ON te.issue_id = i.id
		JOIN projects p ON te.project_id = p.id
		JOIN users u ON te.user_id = u.id
	`

	var args []any
	var conditions []string
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conditions = append(conditions, fmt.Sprintf("te.project_id = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("te.user_id = $%d", len(args)))
	}
	if filter.WeekStart != nil {
		args = append(args, *filter.WeekStart)
		conditions = append(conditions, fmt.Sprintf("te.entry_date >= $%d", len(args)))
		args = append(args, filter.WeekStart.AddDate(0, 0, 7))
		conditions = append(conditions, fmt.Sprintf("te.entry_date < $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.LedgerRow
	for rows.Next() {
		row := &domain.LedgerRow{}
		var rawLabels []byte
		err := rows.Scan(
			&row.Entry.ID,
			&row.Entry.UserID,
			&row.Entry.ProjectID,
			&row.Entry.IssueID,
			&row.Entry.Date,
			&row.Entry.DurationMinutes,
			&row.Entry.Notes,
			&row.Entry.CreatedAt,
			&row.IssueTitle,
			&row.ProjectName,
			&row.Username,
			&rawLabels,
			&row.Assignee,
		)
		if err != nil {
			return nil, err
		}
		if row.Labels, err = labelsFromJSON(rawLabels); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
