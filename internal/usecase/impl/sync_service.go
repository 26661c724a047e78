package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	providerData usecase.ProviderDataUsecase
	tokenRepo    repository.TokenRepository
	cacheRepo    repository.ProfileCacheRepository
	limitRepo    repository.RateLimitRepository
	syncRepo     repository.SyncRepository
	stateRepo    repository.OAuthStateRepository
	publisher    service.EventPublisher
	locks        *UserLocks
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

// NewSyncService is the constructor for syncService.
func NewSyncService(
	providerData usecase.ProviderDataUsecase,
	tokenRepo repository.TokenRepository,
	cacheRepo repository.ProfileCacheRepository,
	limitRepo repository.RateLimitRepository,
	syncRepo repository.SyncRepository,
	stateRepo repository.OAuthStateRepository,
	publisher service.EventPublisher,
	locks *UserLocks,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		providerData: providerData,
		tokenRepo:    tokenRepo,
		cacheRepo:    cacheRepo,
		limitRepo:    limitRepo,
		syncRepo:     syncRepo,
		stateRepo:    stateRepo,
		publisher:    publisher,
		locks:        locks,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// providerFailure remembers which provider leg failed.
type providerFailure struct {
	provider entity.ProviderType
	err      error
}

func (f *providerFailure) Error() string { return f.provider.String() + ": " + f.err.Error() }

func (f *providerFailure) Unwrap() error { return f.err }

// SynchronizeData fetches both providers concurrently, detects conflicts and
// persists the snapshot. A failed provider leg aborts the whole run: the
// result reports the failure and nothing is written.
func (srv *syncService) SynchronizeData(ctx context.Context, userID uuid.UUID, selection entity.SyncSelection) (*entity.SyncResult, error) {
	if err := validateSelection(selection); err != nil {
		return nil, err
	}

	unlock, err := srv.locks.Lock(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire user lock")
	}
	defer unlock()

	srv.log(ctx).Info("Synchronization started", slog.Any("user_id", userID))

	var (
		githubData   *entity.GitHubData
		linkedinData *entity.LinkedInData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := srv.fetch(gctx, userID, entity.ProviderGitHub)
		if err != nil {
			return err
		}
		githubData, _ = data.(*entity.GitHubData)

		return nil
	})
	g.Go(func() error {
		data, err := srv.fetch(gctx, userID, entity.ProviderLinkedIn)
		if err != nil {
			return err
		}
		linkedinData, _ = data.(*entity.LinkedInData)

		return nil
	})
	if err := g.Wait(); err != nil {
		return srv.failedResult(ctx, userID, err), nil
	}
	if githubData == nil || linkedinData == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("unexpected provider payload type")
	}

	now := srv.now()
	conflicts, syncedFields := srv.detectConflicts(githubData, linkedinData, now)

	snapshot := &entity.SynchronizedSnapshot{
		GitHubData:        githubData.Retain(selection.GitHub),
		LinkedInData:      linkedinData.Retain(selection.LinkedIn),
		LastSyncTimestamp: now,
		Conflicts:         conflicts,
	}
	if err := srv.syncRepo.SaveSnapshot(ctx, userID, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to save snapshot")
	}
	if err := srv.syncRepo.SaveConflicts(ctx, userID, conflicts); err != nil {
		return nil, errors.Wrap(err, "failed to save conflicts")
	}

	srv.log(ctx).Info("Synchronization completed",
		slog.Any("user_id", userID),
		slog.Int("conflicts", len(conflicts)),
		slog.Any("synced_fields", syncedFields))

	srv.publishSynced(ctx, userID, now, conflicts, syncedFields)

	return &entity.SyncResult{
		Success:      true,
		Conflicts:    conflicts,
		SyncedFields: syncedFields,
		SyncedAt:     now,
	}, nil
}

func (srv *syncService) fetch(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (entity.ProviderProfileData, error) {
	data, err := srv.providerData.FetchProviderData(ctx, userID, provider)
	if err != nil {
		return nil, &providerFailure{provider: provider, err: err}
	}

	return data, nil
}

func (srv *syncService) failedResult(ctx context.Context, userID uuid.UUID, err error) *entity.SyncResult {
	failure := &entity.SyncFailure{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: err.Error(),
	}

	if leg, ok := errors.AsType[*providerFailure](err); ok {
		failure.Provider = leg.provider
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		failure.Code = appErr.ErrorCode()
	}

	srv.log(ctx).Warn("Synchronization failed",
		slog.Any("user_id", userID),
		slog.String("provider", failure.Provider.String()),
		slog.String("code", failure.Code),
		slog.Any("error", err))

	return &entity.SyncResult{
		Success:      false,
		Conflicts:    []entity.SyncConflict{},
		SyncedFields: []string{},
		Failure:      failure,
	}
}

// detectConflicts compares every mapped field. Differing non-empty values
// become an unresolved conflict; every other field is reported as synced.
func (srv *syncService) detectConflicts(githubData *entity.GitHubData, linkedinData *entity.LinkedInData, detectedAt time.Time) ([]entity.SyncConflict, []string) {
	conflicts := []entity.SyncConflict{}
	synced := []string{}

	for _, mapping := range entity.ProfileFieldMappings {
		valueA := mapping.FromA(githubData)
		valueB := mapping.FromB(linkedinData)

		switch {
		case valueA != "" && valueB != "" && valueA != valueB:
			conflicts = append(conflicts, entity.SyncConflict{
				ID:               srv.newID(),
				Field:            mapping.Field,
				ValueA:           valueA,
				ValueB:           valueB,
				SourceA:          entity.ProviderGitHub,
				SourceB:          entity.ProviderLinkedIn,
				SourceTimestampA: githubData.SourceTimestamp(),
				SourceTimestampB: linkedinData.SourceTimestamp(),
				DetectedAt:       detectedAt,
			})
		default:
			synced = append(synced, mapping.Field)
		}
	}

	return conflicts, synced
}

func (srv *syncService) publishSynced(ctx context.Context, userID uuid.UUID, syncedAt time.Time, conflicts []entity.SyncConflict, syncedFields []string) {
	conflictFields := make([]string, 0, len(conflicts))
	for _, conflict := range conflicts {
		conflictFields = append(conflictFields, conflict.Field)
	}

	event := &service.ProfileSyncedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		UserID:          userID.String(),
		SyncedAt:        syncedAt,
		SyncedFields:    syncedFields,
		ConflictFields:  conflictFields,
		UnresolvedCount: len(conflicts),
	}
	if err := srv.publisher.PublishProfileSynced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile synced event",
			slog.Any("user_id", userID),
			slog.Any("error", err))
	}
}

func validateSelection(selection entity.SyncSelection) error {
	for _, provider := range entity.Providers {
		for _, section := range selection.ForProvider(provider) {
			if !entity.IsValidSection(provider, section) {
				return domainerrors.ErrValidationFailed.WithDetails("unknown " + provider.String() + " section: " + section)
			}
		}
	}

	return nil
}

// RequestSync validates the selection and hands the run to the sync worker.
func (srv *syncService) RequestSync(ctx context.Context, userID uuid.UUID, selection entity.SyncSelection) error {
	if err := validateSelection(selection); err != nil {
		return err
	}

	event := &service.SyncRequestedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		Selection: selection,
	}
	if err := srv.publisher.PublishSyncRequested(ctx, event); err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return err
		}

		return domainerrors.ErrBackgroundSyncUnavailable.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Background synchronization requested", slog.Any("user_id", userID))

	return nil
}

// GetSnapshot returns the snapshot persisted by the last successful synchronization.
func (srv *syncService) GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.SynchronizedSnapshot, error) {
	snapshot, err := srv.syncRepo.FindSnapshot(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find snapshot")
	}
	if snapshot == nil {
		return nil, domainerrors.ErrSnapshotNotFound
	}

	conflicts, err := srv.syncRepo.FindConflicts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conflicts")
	}
	snapshot.Conflicts = conflicts

	return snapshot, nil
}

// ClearAllData removes tokens, pending OAuth states, caches, rate-limit state,
// the snapshot and conflicts.
func (srv *syncService) ClearAllData(ctx context.Context, userID uuid.UUID) error {
	unlock, err := srv.locks.Lock(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to acquire user lock")
	}
	defer unlock()

	for _, provider := range entity.Providers {
		if err := srv.tokenRepo.DeleteToken(ctx, userID, provider); err != nil {
			return errors.Wrapf(err, "failed to delete %s token", provider)
		}
		if err := srv.cacheRepo.DeleteCached(ctx, userID, provider); err != nil {
			return errors.Wrapf(err, "failed to delete %s cache", provider)
		}
		if err := srv.limitRepo.DeleteWindow(ctx, userID, provider); err != nil {
			return errors.Wrapf(err, "failed to delete %s rate limit state", provider)
		}
		if err := srv.stateRepo.DeleteState(ctx, userID, provider); err != nil {
			return errors.Wrapf(err, "failed to delete %s oauth state", provider)
		}
	}
	if err := srv.syncRepo.DeleteAll(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete synchronized data")
	}

	srv.log(ctx).Info("All integration data cleared", slog.Any("user_id", userID))

	return nil
}
