package service

import (
	"context"
	"time"

	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/repository"
)

type timerService struct {
	timerRepo repository.TimerRepository
	issueRepo repository.IssueRepository
	ledger    LedgerService
	now       func() time.Time
}

func NewTimerService(
	timerRepo repository.TimerRepository,
	issueRepo repository.IssueRepository,
	ledger LedgerService,
) TimerService {
	return &timerService{
		timerRepo: timerRepo,
		issueRepo: issueRepo,
		ledger:    ledger,
		now:       time.Now,
	}
}

func (s *timerService) Start(ctx context.Context, userID, issueID int64) (*domain.Timer, error) {
	issue, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		if err.Error() == "issue not found" {
			return nil, domain.NewNotFoundError("issue")
		}
		return nil, err
	}

	timer := &domain.Timer{
		UserID:    userID,
		ProjectID: issue.ProjectID,
		IssueID:   issue.ID,
		StartedAt: s.now(),
	}

	if err := s.timerRepo.StartExclusive(ctx, timer); err != nil {
		return nil, err
	}

	return timer, nil
}

func (s *timerService) Stop(ctx context.Context, userID int64, notes *string) (*StopResult, error) {
	timer, err := s.timerRepo.GetRunningByUser(ctx, userID)
	if err != nil {
		if err.Error() == "timer not found" {
			return nil, domain.ErrNoActiveTimer
		}
		return nil, err
	}

	if _, err := s.timerRepo.StopRunning(ctx, userID); err != nil {
		return nil, err
	}

	stoppedAt := s.now()
	minutes := elapsedMinutes(timer.StartedAt, stoppedAt)

	// The entry is dated at the stop time, not the start time.
	date := midnightUTC(stoppedAt)
	entry, err := s.ledger.Append(ctx, userID, timer.IssueID, AppendInput{
		DurationMinutes: minutes,
		Date:            &date,
		Notes:           notes,
	})
	if err != nil {
		return nil, err
	}

	return &StopResult{DurationMinutes: minutes, EntryID: entry.ID}, nil
}

func (s *timerService) Status(ctx context.Context, userID int64) (*domain.TimerStatus, error) {
	timer, err := s.timerRepo.GetRunningByUser(ctx, userID)
	if err != nil {
		if err.Error() == "timer not found" {
			return &domain.TimerStatus{Running: false}, nil
		}
		return nil, err
	}

	issue, err := s.issueRepo.GetByID(ctx, timer.IssueID)
	if err != nil {
		return nil, err
	}

	return &domain.TimerStatus{
		Running:        true,
		IssueID:        issue.ID,
		IssueTitle:     issue.Title,
		ElapsedSeconds: int64(s.now().Sub(timer.StartedAt).Seconds()),
	}, nil
}

// elapsedMinutes truncates partial minutes and never reports less than one:
// a timer stopped after 30s still logs a minute, 125s logs two.
func elapsedMinutes(start, stop time.Time) int {
	minutes := int(stop.Sub(start).Seconds()) / 60
	if minutes < 1 {
		return 1
	}
	return minutes
}
