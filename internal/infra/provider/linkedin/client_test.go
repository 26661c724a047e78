package linkedin

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

var testToken = &entity.AuthToken{AccessToken: "li_test", TokenType: "Bearer"}

func snapshotPage(domain string, records []map[string]string, next string) map[string]any {
	page := map[string]any{
		"elements": []map[string]any{{"snapshotDomain": domain, "snapshotData": records}},
		"paging":   map[string]any{"links": []map[string]string{}},
	}
	if next != "" {
		page["paging"] = map[string]any{"links": []map[string]string{{"rel": "next", "href": next}}}
	}

	return page
}

func newLinkedInServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/userinfo", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub": "abc", "given_name": "Ada", "family_name": "Lovelace", "email": "ada@example.com",
		})
	})
	mux.HandleFunc("/rest/memberSnapshotData", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiVersion, r.Header.Get("LinkedIn-Version"))

		var page map[string]any
		switch r.URL.Query().Get("domain") {
		case domainProfile:
			page = snapshotPage(domainProfile, []map[string]string{{
				"Headline":     "Analyst",
				"Geo Location": "San Francisco Bay Area",
				"Websites":     "[PORTFOLIO:https://ada.dev]",
			}}, "")
		case domainPositions:
			if r.URL.Query().Get("start") == "" {
				page = snapshotPage(domainPositions, []map[string]string{
					{"Company Name": "Engines Ltd", "Title": "Engineer", "Started On": "Jan 2020"},
				}, "/rest/memberSnapshotData?q=criteria&domain=POSITIONS&start=1")
			} else {
				page = snapshotPage(domainPositions, []map[string]string{
					{"Company Name": "Looms Inc", "Title": "Intern", "Started On": "2018", "Finished On": "2019"},
				}, "")
			}
		case domainEducation:
			page = snapshotPage(domainEducation, []map[string]string{
				{"School Name": "University of London", "Degree Name": "BSc", "Start Date": "Sep 2014", "End Date": "2017"},
			}, "")
		case domainSkills:
			page = snapshotPage(domainSkills, []map[string]string{{"Name": "Mathematics"}, {"Name": " "}}, "")
		}
		_ = json.NewEncoder(w).Encode(page)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestClient_GetProfile(t *testing.T) {
	server := newLinkedInServer(t)
	client := NewClientWithHTTP(server.URL, server.Client())

	profile, err := client.GetProfile(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "Lovelace", profile.LastName)
	assert.Equal(t, "San Francisco Bay Area", profile.Location)
	assert.Equal(t, "Analyst", profile.Headline)
	assert.Equal(t, "https://ada.dev", profile.PublicProfileURL)
}

func TestClient_ListPositionsFollowsPaging(t *testing.T) {
	server := newLinkedInServer(t)
	client := NewClientWithHTTP(server.URL, server.Client())

	positions, err := client.ListPositions(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.True(t, positions[0].Current)
	assert.Equal(t, "Engines Ltd", positions[0].Company)
	assert.False(t, positions[1].Current)
}

func TestClient_ListEducationAndSkills(t *testing.T) {
	server := newLinkedInServer(t)
	client := NewClientWithHTTP(server.URL, server.Client())

	education, err := client.ListEducation(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, education, 1)
	assert.Equal(t, 2014, education[0].StartYear)
	assert.Equal(t, 2017, education[0].EndYear)

	skills, err := client.ListSkills(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, []entity.LinkedInSkill{{Name: "Mathematics"}}, skills)
}

func TestClient_UnauthorizedMapsToNotAuthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, server.Client())
	_, err := client.GetProfile(context.Background(), testToken)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}
