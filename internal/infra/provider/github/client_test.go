package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToken = &entity.AuthToken{AccessToken: "gho_test", TokenType: "bearer"}

func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiVersion, r.Header.Get("X-GitHub-Api-Version"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"login":    "octocat",
			"name":     "The Octocat",
			"email":    nil,
			"location": "San Francisco, CA",
			"company":  "@github",
			"blog":     "https://github.blog",
		})
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"email": "old@example.com", "primary": false, "verified": true},
			{"email": "octo@example.com", "primary": true, "verified": true},
		})
	})
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "owner", r.URL.Query().Get("type"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": "hello-world", "language": "Go", "stargazers_count": 42, "forks_count": 3},
		})
	})
	mux.HandleFunc("/user/orgs", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"login": "github"}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestClient_GetProfileFallsBackToPrimaryEmail(t *testing.T) {
	server := newGitHubServer(t)
	client := NewClientWithHTTP(server.URL, server.Client())

	profile, err := client.GetProfile(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Equal(t, "octo@example.com", profile.Email)
	assert.Equal(t, "San Francisco, CA", profile.Location)
}

func TestClient_ListRepositoriesAndOrganizations(t *testing.T) {
	server := newGitHubServer(t)
	client := NewClientWithHTTP(server.URL, server.Client())

	repos, err := client.ListRepositories(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, 42, repos[0].Stars)

	orgs, err := client.ListOrganizations(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, []entity.GitHubOrganization{{Login: "github"}}, orgs)
}

func TestClient_RateLimitBudgetExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, server.Client())
	_, err := client.GetProfile(context.Background(), testToken)
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimitExceeded))
}
