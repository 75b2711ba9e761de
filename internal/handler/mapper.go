package handler

import (
	"github.com/domi413/worklog/internal/domain"
)

const dateLayout = "2006-01-02"

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func domainProjectToHTTP(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:         project.ID,
		Name:       project.Name,
		GithubRepo: project.GithubRepo,
	}
}

func domainIssueToHTTP(issue *domain.Issue) IssueResponse {
	labels := issue.Labels
	if labels == nil {
		labels = []string{}
	}

	return IssueResponse{
		ID:           issue.ID,
		ProjectID:    issue.ProjectID,
		GithubNumber: issue.GithubNumber,
		Title:        issue.Title,
		Body:         issue.Body,
		URL:          issue.URL,
		State:        issue.State,
		Assignee:     issue.Assignee,
		Labels:       labels,
	}
}

func domainIssuesToHTTP(issues []*domain.Issue) []IssueResponse {
	result := make([]IssueResponse, 0, len(issues))
	for _, issue := range issues {
		result = append(result, domainIssueToHTTP(issue))
	}
	return result
}

func domainEntryToHTTP(entry *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:              entry.ID,
		UserID:          entry.UserID,
		ProjectID:       entry.ProjectID,
		IssueID:         entry.IssueID,
		Date:            entry.Date.Format(dateLayout),
		DurationMinutes: entry.DurationMinutes,
		Notes:           entry.Notes,
	}
}

func domainLedgerRowsToHTTP(rows []*domain.LedgerRow) []LedgerRowResponse {
	result := make([]LedgerRowResponse, 0, len(rows))
	for _, row := range rows {
		labels := row.Labels
		if labels == nil {
			labels = []string{}
		}
		result = append(result, LedgerRowResponse{
			Entry:       domainEntryToHTTP(&row.Entry),
			IssueTitle:  row.IssueTitle,
			ProjectName: row.ProjectName,
			Username:    row.Username,
			Labels:      labels,
			Assignee:    row.Assignee,
		})
	}
	return result
}

func domainChartToHTTP(chart *domain.WeeklyChart) WeeklyChartResponse {
	datasets := make([]ChartDatasetResponse, 0, len(chart.Datasets))
	for _, dataset := range chart.Datasets {
		data := make([]int, len(dataset.Data))
		copy(data, dataset.Data[:])
		datasets = append(datasets, ChartDatasetResponse{
			Label: dataset.Label,
			Data:  data,
		})
	}

	return WeeklyChartResponse{
		Labels:   chart.Labels,
		Datasets: datasets,
	}
}

func domainSyncResultsToHTTP(results []domain.RepoSyncResult) []RepoSyncResultResponse {
	out := make([]RepoSyncResultResponse, 0, len(results))
	for _, result := range results {
		var errText *string
		if result.Err != nil {
			msg := result.Err.Error()
			errText = &msg
		}
		out = append(out, RepoSyncResultResponse{
			Repo:    result.Repo,
			Created: result.Created,
			Updated: result.Updated,
			Error:   errText,
		})
	}
	return out
}
