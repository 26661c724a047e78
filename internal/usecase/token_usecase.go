// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenUsecase manages the OAuth lifecycle of a user's provider connections.
type TokenUsecase interface {
	AuthorizationURL(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*AuthorizationOutput, error)
	Authenticate(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, input *AuthenticateInput) (*entity.AuthToken, error)
	// GetValidToken returns a usable token, refreshing an expired one once.
	// It returns nil when the user has no usable connection.
	GetValidToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.AuthToken, error)
	Refresh(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, token *entity.AuthToken) (*entity.AuthToken, error)
	Revoke(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
	Status(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.ConnectionStatus, error)
}

// --- Input DTOs ---

// AuthenticateInput carries the provider callback parameters.
type AuthenticateInput struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state" validate:"required"`
}

// --- Output DTOs ---

// AuthorizationOutput is the provider consent URL and the state bound to it.
type AuthorizationOutput struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
