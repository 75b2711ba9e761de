package repository

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

type TimerRepository interface {
	// StartExclusive atomically stops every running timer of timer.UserID
	// (zero or more; the invariant is advisory until enforced here) and
	// inserts timer as the single running one. Concurrent starts and stops
	// for the same user are serialized.
	StartExclusive(ctx context.Context, timer *domain.Timer) error
	// StopRunning sets running=false on every running timer of the user and
	// returns how many rows were affected.
	StopRunning(ctx context.Context, userID int64) (int64, error)
	GetRunningByUser(ctx context.Context, userID int64) (*domain.Timer, error)
}
