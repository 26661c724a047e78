// Package demo provides in-process provider clients that serve fixed sample
// data. They back providers.mode "demo" and double as fakes in tests.
package demo

import (
	"context"
	"sync"
	"time"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"
)

// GitHubClient serves a configurable GitHub account.
type GitHubClient struct {
	mu            sync.Mutex
	Profile       entity.GitHubProfile
	Repositories  []entity.GitHubRepository
	Organizations []entity.GitHubOrganization

	// Err, when set, is returned by every call.
	Err error
	// Delay is waited before answering, honouring context cancellation.
	Delay time.Duration

	calls int
}

// NewGitHubClient returns a client preloaded with sample data.
func NewGitHubClient() *GitHubClient {
	return &GitHubClient{
		Profile: entity.GitHubProfile{
			Login:       "octocat",
			Name:        "Mona Lisa Octocat",
			Email:       "mona@example.com",
			Location:    "San Francisco, CA",
			Company:     "GitHub",
			Bio:         "Building developer tools",
			Blog:        "https://octocat.dev",
			HTMLURL:     "https://github.com/octocat",
			PublicRepos: 3,
			Followers:   120,
			Following:   8,
			CreatedAt:   time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
		},
		Repositories: []entity.GitHubRepository{
			{Name: "hello-world", FullName: "octocat/hello-world", Language: "Go", Stars: 1500, Forks: 210},
			{Name: "spoon-knife", FullName: "octocat/spoon-knife", Language: "HTML", Stars: 12000, Forks: 140000},
			{Name: "linguist", FullName: "octocat/linguist", Language: "Ruby", Stars: 90, Forks: 12, Fork: true},
		},
		Organizations: []entity.GitHubOrganization{
			{Login: "github", Description: "How people build software."},
		},
	}
}

// Calls returns how many API calls were served.
func (c *GitHubClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

func (c *GitHubClient) begin(ctx context.Context) error {
	c.mu.Lock()
	c.calls++
	err, delay := c.Err, c.Delay
	c.mu.Unlock()

	if err := wait(ctx, delay); err != nil {
		return err
	}

	return err
}

func (c *GitHubClient) GetProfile(ctx context.Context, _ *entity.AuthToken) (*entity.GitHubProfile, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}
	profile := c.Profile

	return &profile, nil
}

func (c *GitHubClient) ListRepositories(ctx context.Context, _ *entity.AuthToken) ([]entity.GitHubRepository, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	return append([]entity.GitHubRepository(nil), c.Repositories...), nil
}

func (c *GitHubClient) ListOrganizations(ctx context.Context, _ *entity.AuthToken) ([]entity.GitHubOrganization, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	return append([]entity.GitHubOrganization(nil), c.Organizations...), nil
}

// LinkedInClient serves a configurable LinkedIn account.
type LinkedInClient struct {
	mu        sync.Mutex
	Profile   entity.LinkedInProfile
	Positions []entity.LinkedInPosition
	Education []entity.LinkedInEducation
	Skills    []entity.LinkedInSkill

	// Err, when set, is returned by every call.
	Err error
	// Delay is waited before answering, honouring context cancellation.
	Delay time.Duration

	calls int
}

// NewLinkedInClient returns a client preloaded with sample data.
func NewLinkedInClient() *LinkedInClient {
	return &LinkedInClient{
		Profile: entity.LinkedInProfile{
			ID:               "mona-octocat",
			FirstName:        "Mona Lisa",
			LastName:         "Octocat",
			Headline:         "Staff Engineer at GitHub",
			Email:            "mona@example.com",
			Location:         "San Francisco Bay Area",
			Industry:         "Software Development",
			PublicProfileURL: "https://www.linkedin.com/in/mona-octocat",
		},
		Positions: []entity.LinkedInPosition{
			{Title: "Staff Engineer", Company: "GitHub", Location: "San Francisco", StartDate: "Mar 2019", Current: true},
			{Title: "Software Engineer", Company: "Example Corp", StartDate: "Jun 2014", EndDate: "Feb 2019"},
		},
		Education: []entity.LinkedInEducation{
			{School: "Example University", Degree: "BSc", FieldOfStudy: "Computer Science", StartYear: 2010, EndYear: 2014},
		},
		Skills: []entity.LinkedInSkill{
			{Name: "Go", Endorsements: 48},
			{Name: "Distributed Systems", Endorsements: 21},
		},
	}
}

// Calls returns how many API calls were served.
func (c *LinkedInClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

func (c *LinkedInClient) begin(ctx context.Context) error {
	c.mu.Lock()
	c.calls++
	err, delay := c.Err, c.Delay
	c.mu.Unlock()

	if err := wait(ctx, delay); err != nil {
		return err
	}

	return err
}

func (c *LinkedInClient) GetProfile(ctx context.Context, _ *entity.AuthToken) (*entity.LinkedInProfile, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}
	profile := c.Profile

	return &profile, nil
}

func (c *LinkedInClient) ListPositions(ctx context.Context, _ *entity.AuthToken) ([]entity.LinkedInPosition, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	return append([]entity.LinkedInPosition(nil), c.Positions...), nil
}

func (c *LinkedInClient) ListEducation(ctx context.Context, _ *entity.AuthToken) ([]entity.LinkedInEducation, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	return append([]entity.LinkedInEducation(nil), c.Education...), nil
}

func (c *LinkedInClient) ListSkills(ctx context.Context, _ *entity.AuthToken) ([]entity.LinkedInSkill, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	return append([]entity.LinkedInSkill(nil), c.Skills...), nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var (
	_ service.GitHubClient   = (*GitHubClient)(nil)
	_ service.LinkedInClient = (*LinkedInClient)(nil)
)
