package crypto

import (
	"context"

	"profilesync/internal/errors"

	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/localsecrets" // base64key:// keepers
)

// KeeperEncryptor delegates to a gocloud.dev secrets keeper, so the key can
// live in a KMS instead of the process configuration.
type KeeperEncryptor struct {
	keeper *secrets.Keeper
}

// NewKeeperEncryptor opens the keeper behind url, e.g. "base64key://<key>".
func NewKeeperEncryptor(ctx context.Context, url string) (*KeeperEncryptor, error) {
	if url == "" {
		return nil, errors.New("encryption keeper url must be provided")
	}

	keeper, err := secrets.OpenKeeper(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "open secrets keeper")
	}

	return &KeeperEncryptor{keeper: keeper}, nil
}

func (e *KeeperEncryptor) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	ciphertext, err := e.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "keeper encrypt")
	}

	return ciphertext, nil
}

func (e *KeeperEncryptor) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	plaintext, err := e.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "keeper decrypt")
	}

	return plaintext, nil
}

// Close releases the keeper.
func (e *KeeperEncryptor) Close() error {
	return e.keeper.Close()
}
