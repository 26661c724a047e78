// Package blob implements the key-value store on a gocloud.dev bucket.
package blob

import (
	"context"
	"log/slog"

	"profilesync/config"
	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Store is a repository.KeyValueStore with one object per key.
type Store struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on stop.
func New(params Params) (*Store, error) {
	cfg := params.Config.Storage.Blob

	store, err := Open(context.Background(), cfg.URL, cfg.Prefix)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Initialized blob key-value store", "url", cfg.URL, "prefix", cfg.Prefix)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens the bucket at url, scoping every key under prefix.
func Open(ctx context.Context, url, prefix string) (*Store, error) {
	if url == "" {
		return nil, errors.New("blob bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}
	if prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	return &Store{bucket: bucket}, nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "blob read %s", key)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/octet-stream"}
	if err := s.bucket.WriteAll(ctx, key, value, opts); err != nil {
		return errors.Wrapf(err, "blob write %s", key)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "blob delete %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}
