package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
)

// conflictService implements the ConflictUsecase interface.
type conflictService struct {
	syncRepo repository.SyncRepository
	locks    *UserLocks
	logger   *slog.Logger
	now      func() time.Time
}

// NewConflictService is the constructor for conflictService.
func NewConflictService(
	syncRepo repository.SyncRepository,
	locks *UserLocks,
	logger *slog.Logger,
) usecase.ConflictUsecase {
	return &conflictService{
		syncRepo: syncRepo,
		locks:    locks,
		logger:   logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *conflictService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetConflicts returns every stored conflict, resolved ones included.
func (srv *conflictService) GetConflicts(ctx context.Context, userID uuid.UUID) ([]entity.SyncConflict, error) {
	conflicts, err := srv.syncRepo.FindConflicts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conflicts")
	}

	srv.log(ctx).Debug("Conflicts loaded", slog.Any("user_id", userID), slog.Int("count", len(conflicts)))

	return conflicts, nil
}

// ResolveConflict settles one conflict and rewrites the whole list.
// A resolved conflict only accepts the same resolution again, which is a no-op.
func (srv *conflictService) ResolveConflict(ctx context.Context, userID uuid.UUID, input *usecase.ResolveConflictInput) (*entity.SyncConflict, error) {
	if input == nil || !input.Resolution.IsValid() {
		return nil, domainerrors.ErrInvalidResolution.WithDetails("resolution must be providerA, providerB or manual")
	}
	if input.Resolution == entity.ResolutionManual && input.ManualValue == nil {
		return nil, domainerrors.ErrInvalidResolution.WithDetails("manual resolution requires a value")
	}

	unlock, err := srv.locks.Lock(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire user lock")
	}
	defer unlock()

	conflicts, err := srv.syncRepo.FindConflicts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conflicts")
	}

	idx := -1
	for i := range conflicts {
		if conflicts[i].ID == input.ConflictID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domainerrors.ErrConflictNotFound.WithDetails(input.ConflictID)
	}

	conflict := conflicts[idx]
	if conflict.Resolved {
		if conflict.Resolution == input.Resolution && sameManualValue(conflict, input) {
			return &conflict, nil
		}

		return nil, domainerrors.ErrInvalidResolution.WithDetails("conflict already resolved with " + string(conflict.Resolution))
	}

	var value string
	switch input.Resolution {
	case entity.ResolutionProviderA:
		value = conflict.ValueA
	case entity.ResolutionProviderB:
		value = conflict.ValueB
	case entity.ResolutionManual:
		value = *input.ManualValue
	}

	resolvedAt := srv.now()
	conflict.Resolved = true
	conflict.Resolution = input.Resolution
	conflict.ResolvedValue = &value
	conflict.ResolvedAt = &resolvedAt
	conflicts[idx] = conflict

	if err := srv.syncRepo.SaveConflicts(ctx, userID, conflicts); err != nil {
		return nil, errors.Wrap(err, "failed to save conflicts")
	}

	srv.log(ctx).Info("Conflict resolved",
		slog.Any("user_id", userID),
		slog.String("conflict_id", conflict.ID),
		slog.String("field", conflict.Field),
		slog.String("resolution", string(conflict.Resolution)))

	return &conflict, nil
}

func sameManualValue(conflict entity.SyncConflict, input *usecase.ResolveConflictInput) bool {
	if input.Resolution != entity.ResolutionManual {
		return true
	}

	return conflict.ResolvedValue != nil && *conflict.ResolvedValue == *input.ManualValue
}
