package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"
	mockRepo "profilesync/internal/mocks/repository"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedConflicts(t *testing.T, tf *engineFixtures) []entity.SyncConflict {
	t.Helper()

	detected := tf.clock.Now()
	conflicts := []entity.SyncConflict{
		{
			ID: "c-location", Field: entity.FieldLocation,
			ValueA: "San Francisco, CA", ValueB: "San Francisco Bay Area",
			SourceA: entity.ProviderGitHub, SourceB: entity.ProviderLinkedIn,
			SourceTimestampA: detected, SourceTimestampB: detected, DetectedAt: detected,
		},
		{
			ID: "c-bio", Field: entity.FieldBio,
			ValueA: "Building developer tools", ValueB: "Staff Engineer at GitHub",
			SourceA: entity.ProviderGitHub, SourceB: entity.ProviderLinkedIn,
			SourceTimestampA: detected, SourceTimestampB: detected, DetectedAt: detected,
		},
	}
	require.NoError(t, tf.syncRepo.SaveConflicts(context.Background(), tf.userID, conflicts))

	return conflicts
}

func storedConflict(t *testing.T, tf *engineFixtures, id string) entity.SyncConflict {
	t.Helper()

	conflicts, err := tf.conflicts.GetConflicts(context.Background(), tf.userID)
	require.NoError(t, err)

	return findConflictByID(t, conflicts, id)
}

func findConflictByID(t *testing.T, conflicts []entity.SyncConflict, id string) entity.SyncConflict {
	t.Helper()

	for _, c := range conflicts {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("conflict %q not found", id)

	return entity.SyncConflict{}
}

func TestConflictService_GetConflicts_Empty(t *testing.T) {
	tf := createTestEngine(t)

	conflicts, err := tf.conflicts.GetConflicts(context.Background(), tf.userID)

	require.NoError(t, err)
	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestConflictService_ResolveConflict(t *testing.T) {
	manual := "San Francisco"

	tests := []struct {
		name       string
		resolution entity.Resolution
		manual     *string
		want       string
	}{
		{name: "provider A", resolution: entity.ResolutionProviderA, want: "San Francisco, CA"},
		{name: "provider B", resolution: entity.ResolutionProviderB, want: "San Francisco Bay Area"},
		{name: "manual", resolution: entity.ResolutionManual, manual: &manual, want: "San Francisco"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := createTestEngine(t)
			seedConflicts(t, tf)

			resolved, err := tf.conflicts.ResolveConflict(context.Background(), tf.userID, &usecase.ResolveConflictInput{
				ConflictID:  "c-location",
				Resolution:  tt.resolution,
				ManualValue: tt.manual,
			})

			require.NoError(t, err)
			assert.True(t, resolved.Resolved)
			assert.Equal(t, tt.resolution, resolved.Resolution)
			require.NotNil(t, resolved.ResolvedValue)
			assert.Equal(t, tt.want, *resolved.ResolvedValue)
			require.NotNil(t, resolved.ResolvedAt)

			stored := storedConflict(t, tf, "c-location")
			assert.True(t, stored.Resolved)
			assert.Equal(t, tt.want, *stored.ResolvedValue)
			assert.False(t, storedConflict(t, tf, "c-bio").Resolved, "other conflicts are untouched")
		})
	}
}

func TestConflictService_ResolveConflict_SameResolutionIsIdempotent(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()
	seedConflicts(t, tf)
	input := &usecase.ResolveConflictInput{ConflictID: "c-location", Resolution: entity.ResolutionProviderA}

	first, err := tf.conflicts.ResolveConflict(ctx, tf.userID, input)
	require.NoError(t, err)

	tf.clock.Advance(time.Minute)
	second, err := tf.conflicts.ResolveConflict(ctx, tf.userID, input)
	require.NoError(t, err)

	assert.Equal(t, *first.ResolvedValue, *second.ResolvedValue)
	assert.True(t, first.ResolvedAt.Equal(*second.ResolvedAt), "a repeated resolution changes nothing")
}

func TestConflictService_ResolveConflict_ResolvedIsTerminal(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()
	seedConflicts(t, tf)

	_, err := tf.conflicts.ResolveConflict(ctx, tf.userID, &usecase.ResolveConflictInput{
		ConflictID: "c-location", Resolution: entity.ResolutionProviderA,
	})
	require.NoError(t, err)

	_, err = tf.conflicts.ResolveConflict(ctx, tf.userID, &usecase.ResolveConflictInput{
		ConflictID: "c-location", Resolution: entity.ResolutionProviderB,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResolution)

	stored := storedConflict(t, tf, "c-location")
	assert.Equal(t, entity.ResolutionProviderA, stored.Resolution)
	assert.Equal(t, "San Francisco, CA", *stored.ResolvedValue)
}

func TestConflictService_ResolveConflict_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.ResolveConflictInput
		wantErr error
	}{
		{
			name:    "manual without value",
			input:   &usecase.ResolveConflictInput{ConflictID: "c-location", Resolution: entity.ResolutionManual},
			wantErr: domainerrors.ErrInvalidResolution,
		},
		{
			name:    "unknown resolution",
			input:   &usecase.ResolveConflictInput{ConflictID: "c-location", Resolution: entity.Resolution("providerC")},
			wantErr: domainerrors.ErrInvalidResolution,
		},
		{
			name:    "unknown conflict",
			input:   &usecase.ResolveConflictInput{ConflictID: "missing", Resolution: entity.ResolutionProviderA},
			wantErr: domainerrors.ErrConflictNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := createTestEngine(t)
			seedConflicts(t, tf)

			_, err := tf.conflicts.ResolveConflict(context.Background(), tf.userID, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			stored := storedConflict(t, tf, "c-location")
			assert.False(t, stored.Resolved, "a rejected resolution leaves the conflict unchanged")
			assert.Nil(t, stored.ResolvedValue)
		})
	}
}

func TestConflictService_ResolveConflict_SaveFailure(t *testing.T) {
	syncRepo := mockRepo.NewMockSyncRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewConflictService(syncRepo, NewUserLocks(), logger)

	ctx := context.Background()
	userID := uuid.New()
	conflicts := []entity.SyncConflict{{ID: "c1", Field: entity.FieldName, ValueA: "a", ValueB: "b"}}

	syncRepo.EXPECT().FindConflicts(ctx, userID).Return(conflicts, nil).Once()
	syncRepo.EXPECT().SaveConflicts(ctx, userID, mock.Anything).Return(domainerrors.NewStorageError(errors.New("disk full"), "sync_conflicts")).Once()

	_, err := srv.ResolveConflict(ctx, userID, &usecase.ResolveConflictInput{ConflictID: "c1", Resolution: entity.ResolutionProviderA})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_FAILED", appErr.ErrorCode())
}

func TestConflictService_ResolveConflict_LoadFailure(t *testing.T) {
	syncRepo := mockRepo.NewMockSyncRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewConflictService(syncRepo, NewUserLocks(), logger)

	ctx := context.Background()
	userID := uuid.New()
	syncRepo.EXPECT().FindConflicts(ctx, userID).Return(nil, errors.New("store offline")).Once()

	_, err := srv.ResolveConflict(ctx, userID, &usecase.ResolveConflictInput{ConflictID: "c1", Resolution: entity.ResolutionProviderB})

	assert.Error(t, err)
}
