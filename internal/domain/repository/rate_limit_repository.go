package repository

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// RateLimitRepository persists the fixed request window per provider.
type RateLimitRepository interface {
	// FindWindow returns the current window, or nil when no request was recorded yet.
	FindWindow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.RateLimitWindow, error)

	// SaveWindow replaces the window state.
	SaveWindow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, window *entity.RateLimitWindow) error

	// DeleteWindow clears the window state. Idempotent.
	DeleteWindow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
