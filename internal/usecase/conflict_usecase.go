package usecase

import (
	"context"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// ConflictUsecase lists and settles synchronization conflicts.
type ConflictUsecase interface {
	GetConflicts(ctx context.Context, userID uuid.UUID) ([]entity.SyncConflict, error)
	ResolveConflict(ctx context.Context, userID uuid.UUID, input *ResolveConflictInput) (*entity.SyncConflict, error)
}

// ResolveConflictInput selects the value that settles a conflict.
type ResolveConflictInput struct {
	ConflictID  string            `json:"-" param:"id" validate:"required"`
	Resolution  entity.Resolution `json:"resolution" validate:"required"`
	ManualValue *string           `json:"manual_value,omitempty"`
}
