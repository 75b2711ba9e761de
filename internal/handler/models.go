package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type ProjectResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	GithubRepo string `json:"github_repo,omitempty"`
}

type IssueResponse struct {
	ID           int64    `json:"id"`
	ProjectID    int64    `json:"project_id"`
	GithubNumber *int     `json:"github_number,omitempty"`
	Title        string   `json:"title"`
	Body         string   `json:"body,omitempty"`
	URL          string   `json:"url,omitempty"`
	State        string   `json:"state"`
	Assignee     *string  `json:"assignee,omitempty"`
	Labels       []string `json:"labels"`
}

type CreateTimeEntryRequest struct {
	DurationMinutes int     `json:"duration_minutes"`
	Date            string  `json:"date,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type TimeEntryResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	ProjectID       int64   `json:"project_id"`
	IssueID         int64   `json:"issue_id"`
	Date            string  `json:"date"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           *string `json:"notes,omitempty"`
}

type LedgerRowResponse struct {
	Entry       TimeEntryResponse `json:"entry"`
	IssueTitle  string            `json:"issue_title"`
	ProjectName string            `json:"project_name"`
	Username    string            `json:"username"`
	Labels      []string          `json:"labels"`
	Assignee    *string           `json:"assignee,omitempty"`
}

type StartTimerResponse struct {
	TimerID   int64  `json:"timer_id"`
	IssueID   int64  `json:"issue_id"`
	StartedAt string `json:"started_at"`
}

type StopTimerRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type StopTimerResponse struct {
	DurationMinutes int   `json:"duration_minutes"`
	EntryID         int64 `json:"entry_id"`
}

type TimerStatusResponse struct {
	Running        bool   `json:"running"`
	IssueID        int64  `json:"issue_id,omitempty"`
	IssueTitle     string `json:"issue_title,omitempty"`
	ElapsedSeconds int64  `json:"elapsed_seconds,omitempty"`
}

type ChartDatasetResponse struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

type WeeklyChartResponse struct {
	Labels   []string               `json:"labels"`
	Datasets []ChartDatasetResponse `json:"datasets"`
}

type RefreshRequest struct {
	Repos []string `json:"repos,omitempty"`
}

type RepoSyncResultResponse struct {
	Repo    string  `json:"repo"`
	Created int     `json:"created"`
	Updated int     `json:"updated"`
	Error   *string `json:"error,omitempty"`
}

type RefreshResponse struct {
	Results []RepoSyncResultResponse `json:"results"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}
