// Package github implements service.GitHubClient on the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"
	"profilesync/internal/infra/provider"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"

	perPage  = 100
	maxPages = 10
)

// Client reads a user's profile, repositories and organizations.
type Client struct {
	rest *provider.RESTClient
}

// NewClient creates the GitHub client from the provider configuration.
func NewClient(cfg *config.Config) service.GitHubClient {
	baseURL := cfg.Providers.GitHub.APIBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return NewClientWithHTTP(baseURL, &http.Client{Timeout: 30 * time.Second})
}

// NewClientWithHTTP creates a Client against baseURL.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{rest: &provider.RESTClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Headers: map[string]string{
			"Accept":               "application/vnd.github+json",
			"X-GitHub-Api-Version": apiVersion,
		},
		IsRateLimited: func(resp *http.Response) bool {
			return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
		},
	}}
}

type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Bio         string    `json:"bio"`
	Blog        string    `json:"blog"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

type emailResponse struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GetProfile reads /user, falling back to the primary verified address of
// /user/emails when the public email is hidden.
func (c *Client) GetProfile(ctx context.Context, token *entity.AuthToken) (*entity.GitHubProfile, error) {
	var user userResponse
	if err := c.rest.GetJSON(ctx, token, "/user", &user); err != nil {
		return nil, err
	}

	profile := &entity.GitHubProfile{
		Login:       user.Login,
		Name:        user.Name,
		Email:       user.Email,
		Location:    user.Location,
		Company:     user.Company,
		Bio:         user.Bio,
		Blog:        user.Blog,
		AvatarURL:   user.AvatarURL,
		HTMLURL:     user.HTMLURL,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
		CreatedAt:   user.CreatedAt,
	}

	if profile.Email == "" {
		var emails []emailResponse
		// The user:email scope may not have been granted; the profile stays usable without it.
		if err := c.rest.GetJSON(ctx, token, "/user/emails", &emails); err == nil {
			for _, e := range emails {
				if e.Primary && e.Verified {
					profile.Email = e.Email

					break
				}
			}
		}
	}

	return profile, nil
}

// ListRepositories pages through the repositories owned by the user.
func (c *Client) ListRepositories(ctx context.Context, token *entity.AuthToken) ([]entity.GitHubRepository, error) {
	var repos []entity.GitHubRepository

	for page := 1; page <= maxPages; page++ {
		var batch []entity.GitHubRepository
		path := fmt.Sprintf("/user/repos?type=owner&sort=updated&per_page=%d&page=%d", perPage, page)
		if err := c.rest.GetJSON(ctx, token, path, &batch); err != nil {
			return nil, err
		}

		repos = append(repos, batch...)
		if len(batch) < perPage {
			break
		}
	}

	return repos, nil
}

// ListOrganizations lists the organizations the user is a member of.
func (c *Client) ListOrganizations(ctx context.Context, token *entity.AuthToken) ([]entity.GitHubOrganization, error) {
	var orgs []entity.GitHubOrganization
	if err := c.rest.GetJSON(ctx, token, fmt.Sprintf("/user/orgs?per_page=%d", perPage), &orgs); err != nil {
		return nil, err
	}

	return orgs, nil
}
