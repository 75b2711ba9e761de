package domain

// Issue is the local projection of an external tracker issue. Mutable fields
// (title, body, url, state, labels, assignee) are overwritten on every sync
// pass; project binding and GithubNumber are immutable once set.
type Issue struct {
	ID           int64
	ProjectID    int64
	GithubNumber *int
	Title        string
	Body         string
	URL          string
	State        string
	Assignee     *string
	Labels       []string
}

// HasLabel reports whether the issue's label set contains label.
func (i *Issue) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}
