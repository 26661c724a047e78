package usecase

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncUsecase merges provider payloads into a persisted snapshot.
type SyncUsecase interface {
	SynchronizeData(ctx context.Context, userID uuid.UUID, selection entity.SyncSelection) (*entity.SyncResult, error)
	// RequestSync queues a background synchronization; the worker runs it later.
	RequestSync(ctx context.Context, userID uuid.UUID, selection entity.SyncSelection) error
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.SynchronizedSnapshot, error)
	// ClearAllData removes every key stored for the user.
	ClearAllData(ctx context.Context, userID uuid.UUID) error
}
