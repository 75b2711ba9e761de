package domain

type Project struct {
	ID         int64
	Name       string
	GithubRepo string
}
