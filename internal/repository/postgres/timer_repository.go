package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/domi413/worklog/internal/domain"
)

type timerRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewTimerRepository(db *sql.DB) *timerRepository {
	return &timerRepository{db: db, executor: db}
}

// StartExclusive runs the "stop all running timers, insert one running timer"
// sequence in a single transaction. A per-user advisory lock serializes
// concurrent starts; the partial unique index on timers(user_id) WHERE
// running backstops the invariant.
func (r *timerRepository) StartExclusive(ctx context.Context, timer *domain.Timer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", timer.UserID); err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		"UPDATE timers SET running = FALSE WHERE user_id = $1 AND running",
		timer.UserID,
	)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO timers (user_id, project_id, issue_id, started_at, running)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id
	`

	err = tx.QueryRowContext(
		ctx,
		query,
		timer.UserID,
		timer.ProjectID,
		timer.IssueID,
		timer.StartedAt,
	).Scan(&timer.ID)
	if err != nil {
		return err
	}
	timer.Running = true

	return tx.Commit()
}

func (r *timerRepository) StopRunning(ctx context.Context, userID int64) (int64, error) {
	result, err := r.executor.ExecContext(
		ctx,
		"UPDATE timers SET running = FALSE WHERE user_id = $1 AND running",
		userID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *timerRepository) GetRunningByUser(ctx context.Context, userID int64) (*domain.Timer, error) {
	query := `
		SELECT id, user_id, project_id, issue_id, started_at, running
		FROM timers
		WHERE user_id = $1 AND running
	`

	timer := &domain.Timer{}
	err := r.executor.QueryRowContext(ctx, query, userID).Scan(
		&timer.ID,
		&timer.UserID,
		&timer.ProjectID,
		&timer.IssueID,
		&timer.StartedAt,
		&timer.Running,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("timer not found")
		}
		return nil, err
	}

	return timer, nil
}
