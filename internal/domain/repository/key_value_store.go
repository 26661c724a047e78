// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by a KeyValueStore when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the external store the engine persists to.
// Values are opaque bytes; encryption happens above this layer.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
