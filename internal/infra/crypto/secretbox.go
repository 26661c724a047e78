// Package crypto provides the Encryptor implementations used for secrets at rest.
package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24

	hkdfInfo = "profilesync/secrets/v1"
)

// ErrDecrypt is returned when a ciphertext fails authentication.
var ErrDecrypt = errors.New("decrypt: message authentication failed")

// secretboxEncryptor seals payloads with XSalsa20-Poly1305.
// Output layout: 24-byte random nonce followed by the sealed box.
type secretboxEncryptor struct {
	key [keySize]byte
}

// NewSecretboxEncryptor derives a 256-bit key from passphrase and salt with HKDF-SHA256.
func NewSecretboxEncryptor(passphrase, salt string) (service.Encryptor, error) {
	if passphrase == "" {
		return nil, errors.New("encryption passphrase must be provided")
	}

	enc := &secretboxEncryptor{}
	kdf := hkdf.New(sha256.New, []byte(passphrase), []byte(salt), []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, enc.key[:]); err != nil {
		return nil, errors.Wrap(err, "derive encryption key")
	}

	return enc, nil
}

func (e *secretboxEncryptor) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, errors.Wrap(err, "generate nonce")
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &e.key), nil
}

func (e *secretboxEncryptor) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < nonceSize+secretbox.Overhead {
		return nil, ErrDecrypt
	}

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &e.key)
	if !ok {
		return nil, ErrDecrypt
	}

	return plaintext, nil
}
