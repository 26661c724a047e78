package postgres

import (
	"context"

	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"
	"profilesync/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is a repository.KeyValueStore over the kv_entries table.
type KVStore struct {
	db *gorm.DB
}

// NewKVStore creates a KVStore.
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntryModel
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "select kv entry %s", key)
	}

	return entry.Value, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntryModel{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "upsert kv entry %s", key)
	}

	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntryModel{}).Error
	if err != nil {
		return errors.Wrapf(err, "delete kv entry %s", key)
	}

	return nil
}
