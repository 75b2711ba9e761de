//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository/postgres"
	"github.com/domi413/worklog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerLifecycle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	user, project, issue := seedIssue(t, database, "alice")

	issueRepo := postgres.NewIssueRepository(database)
	timerRepo := postgres.NewTimerRepository(database)
	entryRepo := postgres.NewTimeEntryRepository(database)

	ledgerService := service.NewLedgerService(entryRepo, issueRepo)
	timerService := service.NewTimerService(timerRepo, issueRepo, ledgerService)

	// Start a timer and check it shows up in the status.
	timer, err := timerService.Start(ctx, user.ID, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, issue.ID, timer.IssueID)

	status, err := timerService.Status(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, issue.ID, status.IssueID)
	assert.Equal(t, "Fix formatter", status.IssueTitle)

	// Starting against a second issue swaps the running timer.
	secondNumber := 18
	secondIssue := &domain.Issue{
		ProjectID:    project.ID,
		GithubNumber: &secondNumber,
		Title:        "Write docs",
		State:        "open",
	}
	require.NoError(t, issueRepo.Create(ctx, secondIssue))

	swapped, err := timerService.Start(ctx, user.ID, secondIssue.ID)
	require.NoError(t, err)
	assert.NotEqual(t, timer.ID, swapped.ID)

	running, err := timerRepo.GetRunningByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, secondIssue.ID, running.IssueID, "only the new timer may be running")

	// Stopping converts the timer into a ledger entry of at least one minute.
	result, err := timerService.Stop(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.DurationMinutes)

	entry, err := entryRepo.GetByID(ctx, result.EntryID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, secondIssue.ID, entry.IssueID)
	assert.Equal(t, 1, entry.DurationMinutes)

	// A second stop finds nothing running.
	_, err = timerService.Stop(ctx, user.ID, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoActiveTimer))
}

func TestTimersAreIndependentPerUser(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	alice, _, issue := seedIssue(t, database, "alice")
	bob, _, bobIssue := seedIssue(t, database, "bob")

	issueRepo := postgres.NewIssueRepository(database)
	timerRepo := postgres.NewTimerRepository(database)
	entryRepo := postgres.NewTimeEntryRepository(database)

	ledgerService := service.NewLedgerService(entryRepo, issueRepo)
	timerService := service.NewTimerService(timerRepo, issueRepo, ledgerService)

	_, err := timerService.Start(ctx, alice.ID, issue.ID)
	require.NoError(t, err)
	_, err = timerService.Start(ctx, bob.ID, bobIssue.ID)
	require.NoError(t, err)

	// Stopping alice's timer leaves bob's running.
	_, err = timerService.Stop(ctx, alice.ID, nil)
	require.NoError(t, err)

	status, err := timerService.Status(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, status.Running)
}
