package blob

import (
	"context"
	"testing"

	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestStore_PutGetDelete(t *testing.T) {
	store := NewWithBucket(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	_, err := store.Get(ctx, "u1/sync_conflicts")
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))

	require.NoError(t, store.Put(ctx, "u1/sync_conflicts", []byte("[]")))

	got, err := store.Get(ctx, "u1/sync_conflicts")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got)

	require.NoError(t, store.Delete(ctx, "u1/sync_conflicts"))
	require.NoError(t, store.Delete(ctx, "u1/sync_conflicts"), "delete must be idempotent")

	_, err = store.Get(ctx, "u1/sync_conflicts")
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}

func TestOpen_PrefixedFileBucket(t *testing.T) {
	store, err := Open(context.Background(), "file://"+t.TempDir(), "profilesync/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "u1/github_request_count", []byte("3")))

	got, err := store.Get(ctx, "u1/github_request_count")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), got)
}
