// Package starskey implements the key-value store on the embedded Starskey LSM tree.
package starskey

import (
	"context"
	"log/slog"
	"os"

	"profilesync/config"
	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"

	"github.com/starskey-io/starskey"
	"go.uber.org/fx"
)

const (
	defaultFlushThreshold = 64 * 1024 * 1024
	defaultMaxLevel       = 3
	defaultSizeFactor     = 10
)

// Store is a repository.KeyValueStore backed by Starskey.
type Store struct {
	db *starskey.Starskey
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store described by the storage configuration and closes it on stop.
func New(params Params) (*Store, error) {
	cfg := params.Config.Storage.Starskey

	store, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Initialized Starskey key-value store",
		"path", cfg.Directory,
		"bloomFilter", cfg.BloomFilter,
		"compression", cfg.Compression)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a Starskey database, filling unset tuning values with defaults.
func Open(cfg config.StarskeyConfig) (*Store, error) {
	if cfg.Directory == "" {
		return nil, errors.New("starskey directory must be provided")
	}
	if cfg.FlushThreshold == 0 {
		cfg.FlushThreshold = defaultFlushThreshold
	}
	if cfg.MaxLevel == 0 {
		cfg.MaxLevel = defaultMaxLevel
	}
	if cfg.SizeFactor == 0 {
		cfg.SizeFactor = defaultSizeFactor
	}

	if err := os.MkdirAll(cfg.Directory, 0o750); err != nil {
		return nil, errors.Wrap(err, "create starskey directory")
	}

	starskeyCfg := &starskey.Config{
		Permission:     0o750,
		Directory:      cfg.Directory,
		FlushThreshold: cfg.FlushThreshold,
		MaxLevel:       cfg.MaxLevel,
		SizeFactor:     cfg.SizeFactor,
		BloomFilter:    cfg.BloomFilter,
		SuRF:           false, // point lookups only
		Logging:        false,
		Compression:    cfg.Compression,
	}
	if cfg.Compression {
		starskeyCfg.CompressionOption = starskey.SnappyCompression
	}

	db, err := starskey.Open(starskeyCfg)
	if err != nil {
		return nil, errors.Wrap(err, "open starskey")
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	value, err := s.db.Get([]byte(key))
	if err != nil {
		return nil, errors.Wrapf(err, "starskey get %s", key)
	}
	if value == nil {
		return nil, repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if err := s.db.Put([]byte(key), value); err != nil {
		return errors.Wrapf(err, "starskey put %s", key)
	}

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := s.db.Delete([]byte(key)); err != nil {
		return errors.Wrapf(err, "starskey delete %s", key)
	}

	return nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
