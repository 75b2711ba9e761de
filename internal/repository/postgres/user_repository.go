package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/domi413/worklog/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, github_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.GithubID,
		user.Role,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, email, github_id, role, created_at
		FROM users
		WHERE id = $1
	`

	user := &domain.User{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.GithubID,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetByGithubID(ctx context.Context, githubID string) (*domain.User, error) {
	query := `
		SELECT id, username, email, github_id, role, created_at
		FROM users
		WHERE github_id = $1
	`

	user := &domain.User{}
	err := r.executor.QueryRowContext(ctx, query, githubID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.GithubID,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, username, email, github_id, role, created_at
		FROM users
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.GithubID,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
