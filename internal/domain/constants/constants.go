// Package constants holds the string values recognised in configuration.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Key-value storage backends
const (
	StorageBackendStarskey = "starskey"
	StorageBackendBlob     = "blob"
	StorageBackendPostgres = "postgres"
)

// Encryption modes
const (
	EncryptionModeSecretbox = "secretbox"
	EncryptionModeKeeper    = "keeper"
)

// Provider client modes
const (
	ProviderModeLive = "live"
	ProviderModeDemo = "demo"
)

// Event publisher providers
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
