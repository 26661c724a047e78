package securestore

import (
	"context"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"

	"github.com/google/uuid"
)

type syncRepository struct {
	codec
}

// NewSyncRepository creates a SyncRepository storing "synchronized_data" and "sync_conflicts".
func NewSyncRepository(store repository.KeyValueStore, encryptor service.Encryptor) repository.SyncRepository {
	return &syncRepository{codec{store: store, encryptor: encryptor}}
}

func (repo *syncRepository) FindSnapshot(ctx context.Context, userID uuid.UUID) (*entity.SynchronizedSnapshot, error) {
	var snapshot entity.SynchronizedSnapshot
	found, err := repo.getSecret(ctx, userKey(userID, keySynchronizedData), &snapshot)
	if err != nil || !found {
		return nil, err
	}

	return &snapshot, nil
}

func (repo *syncRepository) SaveSnapshot(ctx context.Context, userID uuid.UUID, snapshot *entity.SynchronizedSnapshot) error {
	return repo.putSecret(ctx, userKey(userID, keySynchronizedData), snapshot)
}

func (repo *syncRepository) FindConflicts(ctx context.Context, userID uuid.UUID) ([]entity.SyncConflict, error) {
	conflicts := []entity.SyncConflict{}
	if _, err := repo.getSecret(ctx, userKey(userID, keySyncConflicts), &conflicts); err != nil {
		return nil, err
	}

	return conflicts, nil
}

func (repo *syncRepository) SaveConflicts(ctx context.Context, userID uuid.UUID, conflicts []entity.SyncConflict) error {
	if conflicts == nil {
		conflicts = []entity.SyncConflict{}
	}

	return repo.putSecret(ctx, userKey(userID, keySyncConflicts), conflicts)
}

func (repo *syncRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return repo.delete(ctx, userKey(userID, keySynchronizedData), userKey(userID, keySyncConflicts))
}
