package repository

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncRepository persists the synchronized snapshot and its conflict list.
// Both are stored whole and replaced whole.
type SyncRepository interface {
	// FindSnapshot returns the last snapshot, or nil when the user never synced.
	FindSnapshot(ctx context.Context, userID uuid.UUID) (*entity.SynchronizedSnapshot, error)

	// SaveSnapshot replaces the snapshot.
	SaveSnapshot(ctx context.Context, userID uuid.UUID, snapshot *entity.SynchronizedSnapshot) error

	// FindConflicts returns every stored conflict, resolved or not.
	FindConflicts(ctx context.Context, userID uuid.UUID) ([]entity.SyncConflict, error)

	// SaveConflicts replaces the whole conflict list.
	SaveConflicts(ctx context.Context, userID uuid.UUID, conflicts []entity.SyncConflict) error

	// DeleteAll removes the snapshot and the conflict list. Idempotent.
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}
