//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/domi413/worklog/internal/db"
	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := pgcontainer.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		pgcontainer.WithDatabase("test_db"),
		pgcontainer.WithUsername("test"),
		pgcontainer.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	require.NoError(t, db.RunMigrations(ctx, database))

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// seedIssue creates a user, a project and an issue to hang entries and
// timers on, and returns all three.
func seedIssue(t *testing.T, database *sql.DB, username string) (*domain.User, *domain.Project, *domain.Issue) {
	ctx := context.Background()

	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		GithubID: "gh-" + username,
		Role:     "user",
	}
	require.NoError(t, postgres.NewUserRepository(database).Create(ctx, user))

	project := &domain.Project{Name: "vhdl-fmt", GithubRepo: "domi413/vhdl-fmt-" + username}
	require.NoError(t, postgres.NewProjectRepository(database).Create(ctx, project))

	number := 17
	issue := &domain.Issue{
		ProjectID:    project.ID,
		GithubNumber: &number,
		Title:        "Fix formatter",
		State:        "open",
		Labels:       []string{"bug"},
	}
	require.NoError(t, postgres.NewIssueRepository(database).Create(ctx, issue))

	return user, project, issue
}
