package securestore

import (
	"context"
	"strconv"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"

	"github.com/google/uuid"
)

type profileCacheRepository struct {
	codec
}

// NewProfileCacheRepository creates a ProfileCacheRepository. The payload is
// encrypted under "{provider}_data"; "{provider}_data_timestamp" holds the
// cache time in epoch milliseconds.
func NewProfileCacheRepository(store repository.KeyValueStore, encryptor service.Encryptor) repository.ProfileCacheRepository {
	return &profileCacheRepository{codec{store: store, encryptor: encryptor}}
}

func (repo *profileCacheRepository) FindCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*repository.CachedProviderData, error) {
	rawTimestamp, found, err := repo.getPlain(ctx, dataTimestampKey(userID, provider))
	if err != nil || !found {
		return nil, err
	}

	millis, err := strconv.ParseInt(string(rawTimestamp), 10, 64)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "parse cache timestamp")
	}

	plaintext, found, err := repo.getSecretRaw(ctx, dataKey(userID, provider))
	if err != nil || !found {
		return nil, err
	}

	data, err := entity.DecodeProviderData(provider, plaintext)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "decode cached provider data")
	}

	return &repository.CachedProviderData{
		Data:     data,
		CachedAt: time.UnixMilli(millis),
	}, nil
}

func (repo *profileCacheRepository) SaveCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, data entity.ProviderProfileData, cachedAt time.Time) error {
	if err := repo.putSecret(ctx, dataKey(userID, provider), data); err != nil {
		return err
	}

	return repo.putPlain(ctx, dataTimestampKey(userID, provider), []byte(strconv.FormatInt(cachedAt.UnixMilli(), 10)))
}

func (repo *profileCacheRepository) DeleteCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	return repo.delete(ctx, dataKey(userID, provider), dataTimestampKey(userID, provider))
}

func dataKey(userID uuid.UUID, provider entity.ProviderType) string {
	return userKey(userID, provider.String()+suffixData)
}

func dataTimestampKey(userID uuid.UUID, provider entity.ProviderType) string {
	return userKey(userID, provider.String()+suffixDataTimestamp)
}
