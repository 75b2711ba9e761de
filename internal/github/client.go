// Package github wraps the GitHub REST API for issue syncing and OAuth user
// lookup.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// RepoIssue is one item from a repository's issue listing. The listing
// conflates issues and pull requests; PullRequest marks the latter.
type RepoIssue struct {
	Number      int
	Title       string
	Body        string
	URL         string
	State       string
	Assignee    *string
	Labels      []string
	PullRequest bool
}

// IssueLister is the listing surface the sync engine depends on.
type IssueLister interface {
	// ListRepoIssues fetches every page of the repository's issue listing
	// (all states, pages of 100, sequential) and returns the items in
	// listing order.
	ListRepoIssues(ctx context.Context, owner, name string) ([]*RepoIssue, error)
}

type Client struct {
	client *gh.Client
}

// NewClient creates a GitHub API client. An empty token means
// unauthenticated access with a lower rate limit.
func NewClient(token string) *Client {
	var tc *http.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{client: gh.NewClient(tc)}
}

func (c *Client) ListRepoIssues(ctx context.Context, owner, name string) ([]*RepoIssue, error) {
	var all []*RepoIssue
	opts := &gh.IssueListByRepoOptions{
		State: "all",
		ListOptions: gh.ListOptions{
			PerPage: 100,
			Page:    1,
		},
	}

	// Pages are fetched one at a time to keep listing order and stay within
	// rate limits.
	for {
		issues, _, err := c.client.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues page %d: %w", opts.Page, err)
		}
		if len(issues) == 0 {
			break
		}

		for _, issue := range issues {
			all = append(all, convertIssue(issue))
		}
		opts.Page++
	}

	return all, nil
}

func convertIssue(issue *gh.Issue) *RepoIssue {
	var assignee *string
	if issue.Assignee != nil {
		login := issue.Assignee.GetLogin()
		assignee = &login
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return &RepoIssue{
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		Body:        issue.GetBody(),
		URL:         issue.GetHTMLURL(),
		State:       issue.GetState(),
		Assignee:    assignee,
		Labels:      labels,
		PullRequest: issue.IsPullRequest(),
	}
}

// AuthenticatedUser fetches the user a freshly exchanged OAuth token belongs to.
func (c *Client) AuthenticatedUser(ctx context.Context) (*gh.User, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user, nil
}

// ParseRepo splits a repository identifier in the "owner/name" format.
func ParseRepo(repo string) (string, string, error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format, expected 'owner/name', got '%s'", repo)
	}
	return parts[0], parts[1], nil
}
