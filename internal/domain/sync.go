package domain

// RepoSyncResult reports the outcome of syncing one repository. Err is set
// when the sync aborted before committing issue rows; a lazily created
// project may still remain.
type RepoSyncResult struct {
	Repo    string
	Created int
	Updated int
	Err     error
}

// Failed reports whether the repository sync aborted.
func (r RepoSyncResult) Failed() bool {
	return r.Err != nil
}
