package domain

import "time"

// Timer is a per-user activity marker. At most one timer with Running=true
// may exist per user at any instant; stopped timers are kept as history.
type Timer struct {
	ID        int64
	UserID    int64
	ProjectID int64
	IssueID   int64
	StartedAt time.Time
	Running   bool
}

// TimerStatus is the recomputed view of a user's running timer.
type TimerStatus struct {
	Running        bool
	IssueID        int64
	IssueTitle     string
	ElapsedSeconds int64
}
