package repository

import (
	"context"
	"time"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// CachedProviderData is a provider payload with the time it was cached.
type CachedProviderData struct {
	Data     entity.ProviderProfileData
	CachedAt time.Time
}

// ProfileCacheRepository caches the last fetched payload per provider.
type ProfileCacheRepository interface {
	// FindCached returns the cached payload, or nil when nothing is cached.
	FindCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*CachedProviderData, error)

	// SaveCached stores the payload together with its cache timestamp.
	SaveCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, data entity.ProviderProfileData, cachedAt time.Time) error

	// DeleteCached removes the payload and its timestamp. Idempotent.
	DeleteCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
