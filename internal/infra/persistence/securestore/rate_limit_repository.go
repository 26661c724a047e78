package securestore

import (
	"context"
	"strconv"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"

	"github.com/google/uuid"
)

type rateLimitRepository struct {
	codec
}

// NewRateLimitRepository creates a RateLimitRepository. Window state is not
// sensitive and is stored as plaintext decimal numbers.
func NewRateLimitRepository(store repository.KeyValueStore) repository.RateLimitRepository {
	return &rateLimitRepository{codec{store: store}}
}

func (repo *rateLimitRepository) FindWindow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.RateLimitWindow, error) {
	rawStart, found, err := repo.getPlain(ctx, lastRequestKey(userID, provider))
	if err != nil || !found {
		return nil, err
	}

	startMillis, err := strconv.ParseInt(string(rawStart), 10, 64)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "parse window start")
	}

	window := &entity.RateLimitWindow{WindowStart: time.UnixMilli(startMillis)}

	rawCount, found, err := repo.getPlain(ctx, requestCountKey(userID, provider))
	if err != nil {
		return nil, err
	}
	if found {
		if window.Count, err = strconv.Atoi(string(rawCount)); err != nil {
			return nil, domainerrors.NewStorageError(err, "parse request count")
		}
	}

	return window, nil
}

func (repo *rateLimitRepository) SaveWindow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, window *entity.RateLimitWindow) error {
	if err := repo.putPlain(ctx, lastRequestKey(userID, provider), []byte(strconv.FormatInt(window.WindowStart.UnixMilli(), 10))); err != nil {
		return err
	}

	return repo.putPlain(ctx, requestCountKey(userID, provider), []byte(strconv.Itoa(window.Count)))
}

func (repo *rateLimitRepository) DeleteWindow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	return repo.delete(ctx, lastRequestKey(userID, provider), requestCountKey(userID, provider))
}

func lastRequestKey(userID uuid.UUID, provider entity.ProviderType) string {
	return userKey(userID, provider.String()+suffixLastRequest)
}

func requestCountKey(userID uuid.UUID, provider entity.ProviderType) string {
	return userKey(userID, provider.String()+suffixRequestCount)
}
