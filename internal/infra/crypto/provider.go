package crypto

import (
	"context"
	"log/slog"

	"profilesync/config"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"go.uber.org/fx"
)

// Params defines the dependencies for the encryptor factory
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the Encryptor from configuration.
func New(params Params) (service.Encryptor, error) {
	cfg := params.Config.Encryption

	switch cfg.Mode {
	case constants.EncryptionModeSecretbox:
		params.Logger.Info("Using secretbox encryptor")

		return NewSecretboxEncryptor(cfg.Passphrase, cfg.Salt)
	case constants.EncryptionModeKeeper:
		enc, err := NewKeeperEncryptor(context.Background(), cfg.KeeperURL)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return enc.Close()
			},
		})
		params.Logger.Info("Using secrets keeper encryptor")

		return enc, nil
	default:
		return nil, errors.Errorf("unknown encryption mode: %s", cfg.Mode)
	}
}
