package entity

import "time"

// AuthToken is the OAuth bearer credential issued by a provider.
// A zero ExpiresAt means the provider issued a non-expiring token.
type AuthToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
	TokenType    string    `json:"token_type"`
}

// IsExpired reports whether the token must be refreshed before use.
func (t *AuthToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !t.ExpiresAt.After(now)
}

// CanRefresh reports whether the token carries a refresh token.
func (t *AuthToken) CanRefresh() bool {
	return t.RefreshToken != ""
}

// ConnectionStatus summarizes a provider connection for the client.
type ConnectionStatus struct {
	Provider    ProviderType `json:"provider"`
	Connected   bool         `json:"connected"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
	Refreshable bool         `json:"refreshable"`
}

// RateLimitWindow is the fixed request window tracked per provider.
type RateLimitWindow struct {
	WindowStart time.Time
	Count       int
}

// OAuthState is the pending CSRF state of an authorization round trip.
// A user has at most one per provider.
type OAuthState struct {
	State     string    `json:"state"`
	ExpiresAt time.Time `json:"expires_at"`
}
