package entity

import "time"

// Resolution selects which value settles a conflict.
type Resolution string

const (
	ResolutionProviderA Resolution = "providerA"
	ResolutionProviderB Resolution = "providerB"
	ResolutionManual    Resolution = "manual"
)

// IsValid reports whether r is a known resolution.
func (r Resolution) IsValid() bool {
	switch r {
	case ResolutionProviderA, ResolutionProviderB, ResolutionManual:
		return true
	default:
		return false
	}
}

// SyncConflict is a disagreement between provider A and provider B on one
// semantic field. Once Resolved is set it never goes back.
type SyncConflict struct {
	ID               string       `json:"id"`
	Field            string       `json:"field"`
	ValueA           string       `json:"value_a"`
	ValueB           string       `json:"value_b"`
	SourceA          ProviderType `json:"source_a"`
	SourceB          ProviderType `json:"source_b"`
	SourceTimestampA time.Time    `json:"source_timestamp_a"`
	SourceTimestampB time.Time    `json:"source_timestamp_b"`
	DetectedAt       time.Time    `json:"detected_at"`
	Resolved         bool         `json:"resolved"`
	Resolution       Resolution   `json:"resolution,omitempty"`
	ResolvedValue    *string      `json:"resolved_value,omitempty"`
	ResolvedAt       *time.Time   `json:"resolved_at,omitempty"`
}

// SynchronizedSnapshot is the merged state persisted by the last successful sync.
type SynchronizedSnapshot struct {
	GitHubData        *GitHubData    `json:"github_data"`
	LinkedInData      *LinkedInData  `json:"linkedin_data"`
	LastSyncTimestamp time.Time      `json:"last_sync_timestamp"`
	Conflicts         []SyncConflict `json:"conflicts"`
}

// SyncSelection names the data sections to retain per provider.
type SyncSelection struct {
	GitHub   []string `json:"github"`
	LinkedIn []string `json:"linkedin"`
}

// ForProvider returns the sections selected for provider.
func (s SyncSelection) ForProvider(provider ProviderType) []string {
	switch provider {
	case ProviderGitHub:
		return s.GitHub
	case ProviderLinkedIn:
		return s.LinkedIn
	default:
		return nil
	}
}

// SyncFailure explains why a synchronization produced nothing.
type SyncFailure struct {
	Provider ProviderType `json:"provider"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
}

// SyncResult is the outcome of one synchronization.
type SyncResult struct {
	Success      bool           `json:"success"`
	Conflicts    []SyncConflict `json:"conflicts"`
	SyncedFields []string       `json:"synced_fields"`
	SyncedAt     time.Time      `json:"synced_at,omitzero"`
	Failure      *SyncFailure   `json:"failure,omitempty"`
}
