package repository

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// OAuthStateRepository persists pending authorization states so any API
// instance can finish a round trip another one started.
type OAuthStateRepository interface {
	// FindState returns the pending state, or nil when none was issued.
	FindState(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.OAuthState, error)

	// SaveState replaces the pending state.
	SaveState(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, state *entity.OAuthState) error

	// DeleteState clears the pending state. Idempotent.
	DeleteState(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
