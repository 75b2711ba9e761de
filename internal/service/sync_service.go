package service

import (
	"context"

	"github.com/domi413/worklog/internal/domain"
)

// SyncService keeps the local project/issue projections consistent with the
// external tracker for a configured set of repositories.
type SyncService interface {
	// SyncRepo mirrors one repository. The project is created and committed
	// before issue pages are processed, so a failed run can leave a project
	// with zero issues; issue writes themselves commit together or not at
	// all. The outcome is reported as a result, not an error.
	SyncRepo(ctx context.Context, repo string) domain.RepoSyncResult

	// SyncAll mirrors each repository sequentially. A nil repo list means
	// the configured default list. Per-repo failures are isolated and never
	// abort the batch.
	SyncAll(ctx context.Context, repos []string) []domain.RepoSyncResult
}
