package github

import (
	"testing"

	gh "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepo(t *testing.T) {
	t.Run("owner and name", func(t *testing.T) {
		owner, name, err := ParseRepo("domi413/vhdl-fmt")
		require.NoError(t, err)
		assert.Equal(t, "domi413", owner)
		assert.Equal(t, "vhdl-fmt", name)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, repo := range []string{"", "no-slash", "a/b/c", "/name", "owner/"} {
			_, _, err := ParseRepo(repo)
			assert.Error(t, err, repo)
		}
	})
}

func TestConvertIssue(t *testing.T) {
	number := 17
	title := "Fix formatter"
	state := "open"
	login := "alice"
	labelName := "bug"

	issue := &gh.Issue{
		Number:   &number,
		Title:    &title,
		State:    &state,
		Assignee: &gh.User{Login: &login},
		Labels:   []*gh.Label{{Name: &labelName}},
	}

	converted := convertIssue(issue)

	assert.Equal(t, 17, converted.Number)
	assert.Equal(t, "Fix formatter", converted.Title)
	assert.Equal(t, "open", converted.State)
	require.NotNil(t, converted.Assignee)
	assert.Equal(t, "alice", *converted.Assignee)
	assert.Equal(t, []string{"bug"}, converted.Labels)
	assert.False(t, converted.PullRequest)

	issue.PullRequestLinks = &gh.PullRequestLinks{}
	assert.True(t, convertIssue(issue).PullRequest)
}
