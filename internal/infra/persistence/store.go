// Package persistence selects the key-value backend the repositories run on.
package persistence

import (
	"log/slog"

	"profilesync/config"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"
	"profilesync/internal/infra/persistence/blob"
	"profilesync/internal/infra/persistence/postgres"
	"profilesync/internal/infra/persistence/starskey"

	"go.uber.org/fx"
)

// Params defines the dependencies for building the key-value store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the backend named by storage.backend.
func NewKeyValueStore(params Params) (repository.KeyValueStore, error) {
	switch backend := params.Config.Storage.Backend; backend {
	case constants.StorageBackendStarskey:
		return starskey.New(starskey.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	case constants.StorageBackendBlob:
		return blob.New(blob.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	case constants.StorageBackendPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Initialized PostgreSQL key-value store")

		return postgres.NewKVStore(db), nil
	default:
		return nil, errors.Errorf("unknown storage backend: %s", backend)
	}
}
