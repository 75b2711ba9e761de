package service

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

// StopResult reports the outcome of stopping a timer: the minutes logged and
// the ledger entry they were logged to.
type StopResult struct {
	DurationMinutes int
	EntryID         int64
}

// TimerService owns the single-active-timer invariant per user. Stopping a
// timer converts its elapsed time into a ledger entry.
type TimerService interface {
	// Start stops any running timer of the user and starts a new one against
	// the issue. The swap is atomic with respect to concurrent starts/stops
	// for the same user.
	Start(ctx context.Context, userID, issueID int64) (*domain.Timer, error)

	// Stop ends the user's running timer and logs max(1, floor(elapsed/60))
	// minutes dated at the stop time.
	Stop(ctx context.Context, userID int64, notes *string) (*StopResult, error)

	// Status reports the running timer, recomputing elapsed seconds on every
	// call.
	Status(ctx context.Context, userID int64) (*domain.TimerStatus, error)
}
