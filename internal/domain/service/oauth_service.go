package service

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// OAuthService talks to a provider's authorization server.
type OAuthService interface {
	// AuthCodeURL builds the URL the user is redirected to for consent.
	AuthCodeURL(provider entity.ProviderType, cfg entity.OAuthConfig, state string) (string, error)

	// Exchange trades an authorization code for a token.
	Exchange(ctx context.Context, provider entity.ProviderType, cfg entity.OAuthConfig, code string) (*entity.AuthToken, error)

	// Refresh trades a refresh token for a new token.
	Refresh(ctx context.Context, provider entity.ProviderType, cfg entity.OAuthConfig, refreshToken string) (*entity.AuthToken, error)
}

// OAuthStateStore issues and checks the CSRF state of an authorization round trip.
type OAuthStateStore interface {
	// Generate returns a new single-use state bound to the user and provider.
	Generate(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (string, error)

	// Validate consumes the state; it fails when unknown, expired or bound elsewhere.
	Validate(ctx context.Context, state string, userID uuid.UUID, provider entity.ProviderType) error
}
