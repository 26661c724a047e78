// Package entity contains the core business objects of the profile
// integration engine.
package entity

import (
	"fmt"
	"strings"
)

// ProviderType identifies an external profile provider.
type ProviderType string

const (
	ProviderGitHub   ProviderType = "github"
	ProviderLinkedIn ProviderType = "linkedin"
)

// Providers lists every supported provider in synchronization order.
// GitHub is provider A, LinkedIn is provider B.
var Providers = []ProviderType{ProviderGitHub, ProviderLinkedIn}

// String returns the raw provider name.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid reports whether p is a supported provider.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderGitHub, ProviderLinkedIn:
		return true
	default:
		return false
	}
}

// ParseProviderType converts a path parameter or config key into a ProviderType.
func ParseProviderType(raw string) (ProviderType, error) {
	p := ProviderType(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", fmt.Errorf("unsupported provider %q", raw)
	}

	return p, nil
}

// OAuthConfig holds the client registration for one provider.
type OAuthConfig struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	RedirectURI  string   `json:"redirect_uri"`
	Scopes       []string `json:"scopes"`
}
