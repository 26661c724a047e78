package usecase

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderDataUsecase fetches and caches normalized provider payloads.
type ProviderDataUsecase interface {
	FetchProviderData(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (entity.ProviderProfileData, error)
	// GetCached returns the cached payload while it is fresh, otherwise nil.
	GetCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (entity.ProviderProfileData, error)
}
