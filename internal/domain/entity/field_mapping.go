package entity

import "strings"

// FieldMapping extracts one semantic field from each provider's payload.
type FieldMapping struct {
	Field string
	FromA func(*GitHubData) string
	FromB func(*LinkedInData) string
}

// Semantic profile fields compared during synchronization.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldLocation = "location"
	FieldCompany  = "company"
	FieldBio      = "bio"
	FieldWebsite  = "website"
)

// ProfileFieldMappings drives conflict detection between GitHub and LinkedIn.
var ProfileFieldMappings = []FieldMapping{
	{
		Field: FieldName,
		FromA: func(d *GitHubData) string { return d.Profile.Name },
		FromB: func(d *LinkedInData) string { return joinParts(d.Profile.FirstName, d.Profile.LastName) },
	},
	{
		Field: FieldEmail,
		FromA: func(d *GitHubData) string { return d.Profile.Email },
		FromB: func(d *LinkedInData) string { return d.Profile.Email },
	},
	{
		Field: FieldLocation,
		FromA: func(d *GitHubData) string { return d.Profile.Location },
		FromB: func(d *LinkedInData) string { return d.Profile.Location },
	},
	{
		Field: FieldCompany,
		FromA: func(d *GitHubData) string { return d.Profile.Company },
		FromB: func(d *LinkedInData) string {
			if p := d.CurrentPosition(); p != nil {
				return p.Company
			}

			return ""
		},
	},
	{
		Field: FieldBio,
		FromA: func(d *GitHubData) string { return d.Profile.Bio },
		FromB: func(d *LinkedInData) string { return d.Profile.Headline },
	},
	{
		Field: FieldWebsite,
		FromA: func(d *GitHubData) string { return d.Profile.Blog },
		FromB: func(d *LinkedInData) string { return d.Profile.PublicProfileURL },
	},
}

// joinParts concatenates the non-empty parts with a single space.
func joinParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, " ")
}
