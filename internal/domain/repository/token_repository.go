package repository

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenRepository stores provider OAuth tokens, encrypted at rest.
type TokenRepository interface {
	// FindToken returns the stored token, or nil when none exists.
	FindToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.AuthToken, error)

	// SaveToken replaces the stored token for the provider.
	SaveToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, token *entity.AuthToken) error

	// DeleteToken removes the token. Idempotent.
	DeleteToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
