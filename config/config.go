package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"

	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/entity"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultFetchTimeout    = 10 * time.Second
	defaultCacheTTL        = 24 * time.Hour
	defaultRateLimitWindow = time.Hour
	defaultStateTTL        = 10 * time.Minute

	defaultGitHubRateLimit   = 5000
	defaultLinkedInRateLimit = 100
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access verifies caller tokens; the identity service signs them with it.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage selects and configures the key-value backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Encryption configures the cipher applied to persisted secrets
	Encryption *EncryptionConfig `json:"encryption" yaml:"encryption"`

	// Providers holds the OAuth registration and API settings of each provider
	Providers *ProvidersConfig `json:"providers" yaml:"providers"`

	// Sync tunes fetch timeouts, caching and rate limiting
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the key-value backend
type StorageConfig struct {
	// Backend is one of "starskey", "blob" or "postgres"
	Backend string `json:"backend" yaml:"backend"`

	Starskey StarskeyConfig `json:"starskey" yaml:"starskey"`

	Blob BlobConfig `json:"blob" yaml:"blob"`
}

// StarskeyConfig defines the embedded LSM store
type StarskeyConfig struct {
	Directory      string `json:"directory" yaml:"directory"`
	FlushThreshold uint64 `json:"flushThreshold" yaml:"flushThreshold"`
	MaxLevel       uint64 `json:"maxLevel" yaml:"maxLevel"`
	SizeFactor     uint64 `json:"sizeFactor" yaml:"sizeFactor"`
	BloomFilter    bool   `json:"bloomFilter" yaml:"bloomFilter"`
	Compression    bool   `json:"compression" yaml:"compression"`
}

// BlobConfig defines the object storage bucket
type BlobConfig struct {
	// URL is a gocloud.dev bucket URL, e.g. "file:///var/lib/profilesync" or "mem://"
	URL string `json:"url" yaml:"url"`

	// Prefix is prepended to every object key
	Prefix string `json:"prefix" yaml:"prefix"`
}

// EncryptionConfig defines the cipher for secrets at rest
type EncryptionConfig struct {
	// Mode is "secretbox" (passphrase-derived key) or "keeper" (gocloud.dev/secrets URL)
	Mode string `json:"mode" yaml:"mode"`

	Passphrase string `json:"passphrase" yaml:"passphrase"`
	Salt       string `json:"salt" yaml:"salt"`

	// KeeperURL, e.g. "base64key://..." or "gcpkms://projects/..."
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

// ProvidersConfig defines the external profile providers
type ProvidersConfig struct {
	// Mode is "live" for the real APIs or "demo" for generated data
	Mode string `json:"mode" yaml:"mode"`

	GitHub   ProviderConfig `json:"github" yaml:"github"`
	LinkedIn ProviderConfig `json:"linkedin" yaml:"linkedin"`
}

// ProviderConfig defines one provider's OAuth client and API endpoint
type ProviderConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`

	// AuthURL and TokenURL override the provider's default OAuth endpoints
	AuthURL  string `json:"authUrl" yaml:"authUrl"`
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`

	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`

	// RateLimit is the request ceiling per rate-limit window
	RateLimit int `json:"rateLimit" yaml:"rateLimit"`
}

// SyncConfig defines synchronization tuning
type SyncConfig struct {
	FetchTimeout    time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
	CacheTTL        time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	RateLimitWindow time.Duration `json:"rateLimitWindow" yaml:"rateLimitWindow"`
	StateTTL        time.Duration `json:"stateTtl" yaml:"stateTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "none", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// TopicID receives profile-synced events (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// SyncTopicID receives background sync requests; its push subscription
	// targets the sync worker (for google provider)
	SyncTopicID string `json:"syncTopicId" yaml:"syncTopicId"`

	// LocalEndpoint receives profile-synced events over HTTP (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// LocalSyncEndpoint is the sync worker's push URL (for local provider)
	LocalSyncEndpoint string `json:"localSyncEndpoint" yaml:"localSyncEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = constants.StorageBackendStarskey
	}

	if cfg.Encryption == nil {
		cfg.Encryption = &EncryptionConfig{}
	}
	if cfg.Encryption.Mode == "" {
		cfg.Encryption.Mode = constants.EncryptionModeSecretbox
	}

	if cfg.Providers == nil {
		cfg.Providers = &ProvidersConfig{}
	}
	if cfg.Providers.Mode == "" {
		cfg.Providers.Mode = constants.ProviderModeLive
	}
	if cfg.Providers.GitHub.RateLimit <= 0 {
		cfg.Providers.GitHub.RateLimit = defaultGitHubRateLimit
	}
	if cfg.Providers.LinkedIn.RateLimit <= 0 {
		cfg.Providers.LinkedIn.RateLimit = defaultLinkedInRateLimit
	}

	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.FetchTimeout <= 0 {
		cfg.Sync.FetchTimeout = defaultFetchTimeout
	}
	if cfg.Sync.CacheTTL <= 0 {
		cfg.Sync.CacheTTL = defaultCacheTTL
	}
	if cfg.Sync.RateLimitWindow <= 0 {
		cfg.Sync.RateLimitWindow = defaultRateLimitWindow
	}
	if cfg.Sync.StateTTL <= 0 {
		cfg.Sync.StateTTL = defaultStateTTL
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = constants.PubSubProviderNone
	}
}

// Provider returns the settings of the given provider.
func (c *ProvidersConfig) Provider(provider entity.ProviderType) (ProviderConfig, bool) {
	switch provider {
	case entity.ProviderGitHub:
		return c.GitHub, true
	case entity.ProviderLinkedIn:
		return c.LinkedIn, true
	default:
		return ProviderConfig{}, false
	}
}

// OAuthConfig converts the provider settings to the domain OAuth registration.
func (p ProviderConfig) OAuthConfig() entity.OAuthConfig {
	return entity.OAuthConfig{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		RedirectURI:  p.RedirectURI,
		Scopes:       p.Scopes,
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
