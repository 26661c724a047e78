package entity

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// ProviderProfileData is the normalized payload fetched from one provider.
// It is implemented by *GitHubData and *LinkedInData.
type ProviderProfileData interface {
	Provider() ProviderType
	SourceTimestamp() time.Time
}

// Data sections a synchronization may retain per provider.
const (
	SectionProfile       = "profile"
	SectionRepositories  = "repositories"
	SectionOrganizations = "organizations"
	SectionLanguages     = "languages"
	SectionStats         = "stats"
	SectionPositions     = "positions"
	SectionEducation     = "education"
	SectionSkills        = "skills"
)

// ProviderSections lists the selectable sections of every provider.
var ProviderSections = map[ProviderType][]string{
	ProviderGitHub:   {SectionProfile, SectionRepositories, SectionOrganizations, SectionLanguages, SectionStats},
	ProviderLinkedIn: {SectionProfile, SectionPositions, SectionEducation, SectionSkills},
}

// IsValidSection reports whether section belongs to provider.
func IsValidSection(provider ProviderType, section string) bool {
	return slices.Contains(ProviderSections[provider], section)
}

// GitHubProfile is the authenticated GitHub user.
type GitHubProfile struct {
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

// GitHubRepository is a repository owned by the user.
type GitHubRepository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	HTMLURL     string    `json:"html_url"`
	Fork        bool      `json:"fork"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GitHubOrganization is an organization the user belongs to.
type GitHubOrganization struct {
	Login       string `json:"login"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

// LanguageStat counts repositories per primary language.
type LanguageStat struct {
	Language   string  `json:"language"`
	RepoCount  int     `json:"repo_count"`
	Percentage float64 `json:"percentage"`
}

// GitHubStats aggregates repository metrics.
type GitHubStats struct {
	TotalRepos    int `json:"total_repos"`
	OriginalRepos int `json:"original_repos"`
	TotalStars    int `json:"total_stars"`
	TotalForks    int `json:"total_forks"`
}

// GitHubData is the payload fetched from GitHub.
type GitHubData struct {
	Profile       GitHubProfile        `json:"profile"`
	Repositories  []GitHubRepository   `json:"repositories,omitempty"`
	Organizations []GitHubOrganization `json:"organizations,omitempty"`
	Languages     []LanguageStat       `json:"languages,omitempty"`
	Stats         *GitHubStats         `json:"stats,omitempty"`
	FetchedAt     time.Time            `json:"fetched_at"`
}

// Provider implements ProviderProfileData.
func (d *GitHubData) Provider() ProviderType { return ProviderGitHub }

// SourceTimestamp implements ProviderProfileData.
func (d *GitHubData) SourceTimestamp() time.Time { return d.FetchedAt }

// Retain returns a copy holding only the selected sections.
// The profile is always kept; an empty selection keeps everything.
func (d *GitHubData) Retain(sections []string) *GitHubData {
	out := *d
	if len(sections) == 0 {
		return &out
	}

	if !slices.Contains(sections, SectionRepositories) {
		out.Repositories = nil
	}
	if !slices.Contains(sections, SectionOrganizations) {
		out.Organizations = nil
	}
	if !slices.Contains(sections, SectionLanguages) {
		out.Languages = nil
	}
	if !slices.Contains(sections, SectionStats) {
		out.Stats = nil
	}

	return &out
}

// LinkedInProfile is the authenticated LinkedIn member.
type LinkedInProfile struct {
	ID                string `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Headline          string `json:"headline"`
	Email             string `json:"email"`
	Location          string `json:"location"`
	Industry          string `json:"industry"`
	Summary           string `json:"summary"`
	PublicProfileURL  string `json:"public_profile_url"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// LinkedInPosition is one entry of the member's experience.
type LinkedInPosition struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
}

// LinkedInEducation is one entry of the member's education.
type LinkedInEducation struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year,omitempty"`
}

// LinkedInSkill is a listed skill with its endorsement count.
type LinkedInSkill struct {
	Name         string `json:"name"`
	Endorsements int    `json:"endorsements"`
}

// LinkedInData is the payload fetched from LinkedIn.
type LinkedInData struct {
	Profile   LinkedInProfile     `json:"profile"`
	Positions []LinkedInPosition  `json:"positions,omitempty"`
	Education []LinkedInEducation `json:"education,omitempty"`
	Skills    []LinkedInSkill     `json:"skills,omitempty"`
	FetchedAt time.Time           `json:"fetched_at"`
}

// Provider implements ProviderProfileData.
func (d *LinkedInData) Provider() ProviderType { return ProviderLinkedIn }

// SourceTimestamp implements ProviderProfileData.
func (d *LinkedInData) SourceTimestamp() time.Time { return d.FetchedAt }

// CurrentPosition returns the position flagged current, falling back to the first one.
func (d *LinkedInData) CurrentPosition() *LinkedInPosition {
	for i := range d.Positions {
		if d.Positions[i].Current {
			return &d.Positions[i]
		}
	}
	if len(d.Positions) > 0 {
		return &d.Positions[0]
	}

	return nil
}

// Retain returns a copy holding only the selected sections.
// The profile is always kept; an empty selection keeps everything.
func (d *LinkedInData) Retain(sections []string) *LinkedInData {
	out := *d
	if len(sections) == 0 {
		return &out
	}

	if !slices.Contains(sections, SectionPositions) {
		out.Positions = nil
	}
	if !slices.Contains(sections, SectionEducation) {
		out.Education = nil
	}
	if !slices.Contains(sections, SectionSkills) {
		out.Skills = nil
	}

	return &out
}

// DecodeProviderData unmarshals a stored payload into the provider's concrete type.
func DecodeProviderData(provider ProviderType, raw []byte) (ProviderProfileData, error) {
	var data ProviderProfileData

	switch provider {
	case ProviderGitHub:
		data = &GitHubData{}
	case ProviderLinkedIn:
		data = &LinkedInData{}
	default:
		return nil, fmt.Errorf("unsupported provider %q", provider)
	}

	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", provider, err)
	}

	return data, nil
}
