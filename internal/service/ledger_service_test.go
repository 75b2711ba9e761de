package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/domi413/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Append(t *testing.T) {
	t.Run("records an entry against the issue's project", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		issue := &domain.Issue{ID: 7, ProjectID: 3, Title: "Fix formatter"}
		date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

		ctx := context.Background()
		mockIssueRepo.On("GetByID", mock.Anything, int64(7)).Return(issue, nil).Once()
		mockEntryRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.TimeEntry) bool {
			return entry.UserID == 1 && entry.ProjectID == 3 && entry.IssueID == 7 &&
				entry.DurationMinutes == 30 && entry.Date.Equal(date)
		})).Return(nil).Once()

		entry, err := svc.Append(ctx, 1, 7, AppendInput{DurationMinutes: 30, Date: &date})

		require.NoError(t, err)
		assert.Equal(t, 30, entry.DurationMinutes)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("defaults the date to today", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		now := time.Date(2024, 1, 3, 17, 45, 0, 0, time.UTC)
		svc := NewLedgerService(mockEntryRepo, mockIssueRepo).(*ledgerService)
		svc.now = func() time.Time { return now }

		issue := &domain.Issue{ID: 7, ProjectID: 3}

		ctx := context.Background()
		mockIssueRepo.On("GetByID", mock.Anything, int64(7)).Return(issue, nil).Once()
		mockEntryRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.TimeEntry) bool {
			return entry.Date.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
		})).Return(nil).Once()

		_, err := svc.Append(ctx, 1, 7, AppendInput{DurationMinutes: 15})

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("rejects non-positive durations", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		ctx := context.Background()
		entry, err := svc.Append(ctx, 1, 7, AppendInput{DurationMinutes: 0})

		require.Error(t, err)
		assert.Nil(t, entry)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		mockEntryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("fails with NOT_FOUND for a missing issue", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		ctx := context.Background()
		mockIssueRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.New("issue not found")).Once()

		entry, err := svc.Append(ctx, 1, 99, AppendInput{DurationMinutes: 30})

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestLedgerService_Delete(t *testing.T) {
	t.Run("deletes an entry owned by the caller", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		entry := &domain.TimeEntry{ID: 42, UserID: 1}

		ctx := context.Background()
		mockEntryRepo.On("GetByID", mock.Anything, int64(42)).Return(entry, nil).Once()
		mockEntryRepo.On("Delete", mock.Anything, int64(42)).Return(nil).Once()

		err := svc.Delete(ctx, 42, 1)

		require.NoError(t, err)
		mockEntryRepo.AssertExpectations(t)
	})

	t.Run("refuses to delete another user's entry", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		entry := &domain.TimeEntry{ID: 42, UserID: 2}

		ctx := context.Background()
		mockEntryRepo.On("GetByID", mock.Anything, int64(42)).Return(entry, nil).Once()

		err := svc.Delete(ctx, 42, 1)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotAuthorized))
		mockEntryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("fails with NOT_FOUND for a missing entry", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		ctx := context.Background()
		mockEntryRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, errors.New("time entry not found")).Once()

		err := svc.Delete(ctx, 42, 1)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestLedgerService_Query(t *testing.T) {
	bug := "bug"
	alice := "alice"

	rows := []*domain.LedgerRow{
		{
			Entry:      domain.TimeEntry{ID: 1, DurationMinutes: 30},
			IssueTitle: "Fix formatter",
			Labels:     []string{"bug", "urgent"},
			Assignee:   &alice,
		},
		{
			Entry:      domain.TimeEntry{ID: 2, DurationMinutes: 45},
			IssueTitle: "Write docs",
			Labels:     []string{"docs"},
			Assignee:   nil,
		},
	}

	t.Run("label filter matches against the issue's label set", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		ctx := context.Background()
		mockEntryRepo.On("ListRows", mock.Anything, mock.Anything).Return(rows, nil).Once()

		result, err := svc.Query(ctx, domain.LedgerFilter{Label: bug})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].Entry.ID)
	})

	t.Run("assignee filter requires an exact match", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		ctx := context.Background()
		mockEntryRepo.On("ListRows", mock.Anything, mock.Anything).Return(rows, nil).Once()

		result, err := svc.Query(ctx, domain.LedgerFilter{Assignee: "alice"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].Entry.ID)
	})

	t.Run("no label or assignee filter returns every row", func(t *testing.T) {
		mockEntryRepo := new(MockTimeEntryRepository)
		mockIssueRepo := new(MockIssueRepository)

		svc := NewLedgerService(mockEntryRepo, mockIssueRepo)

		ctx := context.Background()
		mockEntryRepo.On("ListRows", mock.Anything, mock.Anything).Return(rows, nil).Once()

		result, err := svc.Query(ctx, domain.LedgerFilter{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
