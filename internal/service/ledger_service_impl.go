package service

import (
	"context"
	"time"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

type ledgerService struct {
	entryRepo repository.TimeEntryRepository
	issueRepo repository.IssueRepository
	now       func() time.Time
}

func NewLedgerService(
	entryRepo repository.TimeEntryRepository,
	issueRepo repository.IssueRepository,
) LedgerService {
	return &ledgerService{
		entryRepo: entryRepo,
		issueRepo: issueRepo,
		now:       time.Now,
	}
}

func (s *ledgerService) Append(ctx context.Context, userID, issueID int64, input AppendInput) (*domain.TimeEntry, error) {
	if input.DurationMinutes <= 0 {
		return nil, domain.NewValidationError("duration_minutes must be > 0")
	}

	issue, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		if err.Error() == "issue not found" {
			return nil, domain.NewNotFoundError("issue")
		}
		return nil, err
	}

	date := midnightUTC(s.now())
	if input.Date != nil {
		date = midnightUTC(*input.Date)
	}

	entry := &domain.TimeEntry{
		UserID:          userID,
		ProjectID:       issue.ProjectID,
		IssueID:         issue.ID,
		Date:            date,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *ledgerService) Query(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerRow, error) {
	rows, err := s.entryRepo.ListRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	return filterRowsByIssue(rows, filter.Label, filter.Assignee), nil
}

func (s *ledgerService) Delete(ctx context.Context, entryID, requestingUserID int64) error {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if err.Error() == "time entry not found" {
			return domain.NewNotFoundError("time entry")
		}
		return err
	}

	if entry.UserID != requestingUserID {
		return domain.ErrNotAuthorized
	}

	err = s.entryRepo.Delete(ctx, entryID)
	if err != nil {
		if err.Error() == "time entry not found" {
			return domain.NewNotFoundError("time entry")
		}
		return err
	}

	return nil
}

// filterRowsByIssue applies the label/assignee filters against the joined
// issue attributes. Labels are a set-valued attribute, so this is not pushed
// to storage.
func filterRowsByIssue(rows []*domain.LedgerRow, label, assignee string) []*domain.LedgerRow {
	if label == "" && assignee == "" {
		return rows
	}

	filtered := make([]*domain.LedgerRow, 0, len(rows))
	for _, row := range rows {
		if label != "" && !containsLabel(row.Labels, label) {
			continue
		}
		if assignee != "" && (row.Assignee == nil || *row.Assignee != assignee) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// midnightUTC truncates a timestamp to its calendar date.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
