package service

import "context"

// Encryptor is the symmetric cipher applied to every persisted secret.
// Decrypt(Encrypt(p)) must return p byte for byte.
type Encryptor interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}
