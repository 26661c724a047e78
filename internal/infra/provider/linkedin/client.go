// Package linkedin implements service.LinkedInClient on the LinkedIn OpenID
// userinfo endpoint and the Member Data Portability snapshot API.
package linkedin

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"
	"profilesync/internal/infra/provider"
)

const (
	defaultBaseURL = "https://api.linkedin.com"
	apiVersion     = "202312"

	maxPages = 10
)

// Snapshot domains of the Member Data Portability API.
const (
	domainProfile   = "PROFILE"
	domainPositions = "POSITIONS"
	domainEducation = "EDUCATION"
	domainSkills    = "SKILLS"
)

var (
	urlPattern  = regexp.MustCompile(`https?://[^\s\],]+`)
	yearPattern = regexp.MustCompile(`\d{4}`)
)

// Client reads a member's profile, positions, education and skills.
type Client struct {
	rest *provider.RESTClient
}

// NewClient creates the LinkedIn client from the provider configuration.
func NewClient(cfg *config.Config) service.LinkedInClient {
	baseURL := cfg.Providers.LinkedIn.APIBaseURL
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
			"LinkedIn-Version":          apiVersion,
			"X-Restli-Protocol-Version": "2.0.0",
		},
	}}
}

type userInfoResponse struct {
	Sub        string `json:"sub"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`
}

type snapshotResponse struct {
	Elements []struct {
		SnapshotDomain string              `json:"snapshotDomain"`
		SnapshotData   []map[string]string `json:"snapshotData"`
	} `json:"elements"`
	Paging struct {
		Links []struct {
			Rel  string `json:"rel"`
			Href string `json:"href"`
		} `json:"links"`
	} `json:"paging"`
}

func (r *snapshotResponse) next() string {
	for _, link := range r.Paging.Links {
		if link.Rel == "next" {
			return link.Href
		}
	}

	return ""
}

// snapshot returns every record of one data domain, following pagination links.
func (c *Client) snapshot(ctx context.Context, token *entity.AuthToken, domain string) ([]map[string]string, error) {
	var records []map[string]string

	path := "/rest/memberSnapshotData?q=criteria&domain=" + url.QueryEscape(domain)
	for page := 0; page < maxPages && path != ""; page++ {
		var resp snapshotResponse
		if err := c.rest.GetJSON(ctx, token, path, &resp); err != nil {
			return nil, err
		}

		for _, element := range resp.Elements {
			records = append(records, element.SnapshotData...)
		}
		path = resp.next()
	}

	return records, nil
}

// GetProfile merges the OpenID userinfo claims with the PROFILE snapshot.
func (c *Client) GetProfile(ctx context.Context, token *entity.AuthToken) (*entity.LinkedInProfile, error) {
	var info userInfoResponse
	if err := c.rest.GetJSON(ctx, token, "/v2/userinfo", &info); err != nil {
		return nil, err
	}

	profile := &entity.LinkedInProfile{
		ID:                info.Sub,
		FirstName:         info.GivenName,
		LastName:          info.FamilyName,
		Email:             info.Email,
		ProfilePictureURL: info.Picture,
	}

	records, err := c.snapshot(ctx, token, domainProfile)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		r := records[0]
		profile.Headline = r["Headline"]
		profile.Summary = r["Summary"]
		profile.Industry = r["Industry"]
		profile.Location = r["Geo Location"]
		profile.PublicProfileURL = urlPattern.FindString(r["Websites"])
		if profile.FirstName == "" {
			profile.FirstName = r["First Name"]
		}
		if profile.LastName == "" {
			profile.LastName = r["Last Name"]
		}
	}

	return profile, nil
}

func (c *Client) ListPositions(ctx context.Context, token *entity.AuthToken) ([]entity.LinkedInPosition, error) {
	records, err := c.snapshot(ctx, token, domainPositions)
	if err != nil {
		return nil, err
	}

	positions := make([]entity.LinkedInPosition, 0, len(records))
	for _, r := range records {
		positions = append(positions, entity.LinkedInPosition{
			Title:       r["Title"],
			Company:     r["Company Name"],
			Location:    r["Location"],
			Description: r["Description"],
			StartDate:   r["Started On"],
			EndDate:     r["Finished On"],
			Current:     strings.TrimSpace(r["Finished On"]) == "",
		})
	}

	return positions, nil
}

func (c *Client) ListEducation(ctx context.Context, token *entity.AuthToken) ([]entity.LinkedInEducation, error) {
	records, err := c.snapshot(ctx, token, domainEducation)
	if err != nil {
		return nil, err
	}

	education := make([]entity.LinkedInEducation, 0, len(records))
	for _, r := range records {
		education = append(education, entity.LinkedInEducation{
			School:       r["School Name"],
			Degree:       r["Degree Name"],
			FieldOfStudy: r["Notes"],
			StartYear:    parseYear(r["Start Date"]),
			EndYear:      parseYear(r["End Date"]),
		})
	}

	return education, nil
}

func (c *Client) ListSkills(ctx context.Context, token *entity.AuthToken) ([]entity.LinkedInSkill, error) {
	records, err := c.snapshot(ctx, token, domainSkills)
	if err != nil {
		return nil, err
	}

	skills := make([]entity.LinkedInSkill, 0, len(records))
	for _, r := range records {
		if name := strings.TrimSpace(r["Name"]); name != "" {
			skills = append(skills, entity.LinkedInSkill{Name: name})
		}
	}

	return skills, nil
}

// parseYear extracts the year from snapshot dates such as "2019" or "Sep 2019".
func parseYear(raw string) int {
	year, err := strconv.Atoi(yearPattern.FindString(raw))
	if err != nil {
		return 0
	}

	return year
}
