// Package securestore implements the engine's repositories over a
// key-value store, encrypting every secret on write and decrypting on read.
package securestore

import (
	"context"
	"encoding/json"

	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"github.com/google/uuid"
)

// Logical key names, scoped per user as "{userID}/{name}".
const (
	keySynchronizedData = "synchronized_data"
	keySyncConflicts    = "sync_conflicts"

	suffixToken         = "_token"
	suffixData          = "_data"
	suffixDataTimestamp = "_data_timestamp"
	suffixLastRequest   = "_last_request"
	suffixRequestCount  = "_request_count"
	suffixOAuthState    = "_oauth_state"
)

func userKey(userID uuid.UUID, name string) string {
	return userID.String() + "/" + name
}

// codec is the single encode/decode path shared by all repositories.
type codec struct {
	store     repository.KeyValueStore
	encryptor service.Encryptor
}

// putSecret marshals v to JSON, encrypts it and stores it under key.
func (c *codec) putSecret(ctx context.Context, key string, v any) error {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}

	ciphertext, err := c.encryptor.Encrypt(ctx, plaintext)
	if err != nil {
		return domainerrors.NewStorageError(err, "encrypt "+key)
	}

	return c.putPlain(ctx, key, ciphertext)
}

// getSecretRaw returns the decrypted JSON stored under key; found is false when absent.
func (c *codec) getSecretRaw(ctx context.Context, key string) (plaintext []byte, found bool, err error) {
	ciphertext, found, err := c.getPlain(ctx, key)
	if err != nil || !found {
		return nil, found, err
	}

	plaintext, err = c.encryptor.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, false, domainerrors.NewStorageError(err, "decrypt "+key)
	}

	return plaintext, true, nil
}

// getSecret decrypts and unmarshals the value under key into v.
func (c *codec) getSecret(ctx context.Context, key string, v any) (bool, error) {
	plaintext, found, err := c.getSecretRaw(ctx, key)
	if err != nil || !found {
		return found, err
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return false, domainerrors.NewStorageError(err, "unmarshal "+key)
	}

	return true, nil
}

func (c *codec) putPlain(ctx context.Context, key string, value []byte) error {
	if err := c.store.Put(ctx, key, value); err != nil {
		return domainerrors.NewStorageError(err, "write "+key)
	}

	return nil
}

func (c *codec) getPlain(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, false, nil
		}

		return nil, false, domainerrors.NewStorageError(err, "read "+key)
	}

	return value, true, nil
}

func (c *codec) delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
			return domainerrors.NewStorageError(err, "delete "+key)
		}
	}

	return nil
}
