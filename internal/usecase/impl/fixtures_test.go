package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/repository"
	"profilesync/internal/infra/crypto"
	"profilesync/internal/infra/oauth"
	blobstore "profilesync/internal/infra/persistence/blob"
	"profilesync/internal/infra/persistence/securestore"
	"profilesync/internal/infra/provider/demo"
	mockService "profilesync/internal/mocks/service"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// testClock is a manually advanced clock shared by every service under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	// Millisecond precision matches what the rate-limit state persists.
	return &testClock{now: time.Now().Truncate(time.Millisecond)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Providers: &config.ProvidersConfig{
			Mode: constants.ProviderModeDemo,
			GitHub: config.ProviderConfig{
				ClientID:     "github-client",
				ClientSecret: "github-secret",
				RedirectURI:  "http://localhost:8080/callback/github",
				Scopes:       []string{"read:user", "user:email"},
				RateLimit:    5,
			},
			LinkedIn: config.ProviderConfig{
				ClientID:     "linkedin-client",
				ClientSecret: "linkedin-secret",
				RedirectURI:  "http://localhost:8080/callback/linkedin",
				Scopes:       []string{"openid", "profile", "email"},
				RateLimit:    3,
			},
		},
		Sync: &config.SyncConfig{
			FetchTimeout:    time.Second,
			CacheTTL:        24 * time.Hour,
			RateLimitWindow: time.Hour,
			StateTTL:        10 * time.Minute,
		},
	}
}

// engineFixtures wires the real services over an in-memory store with demo
// provider clients.
type engineFixtures struct {
	cfg    *config.Config
	clock  *testClock
	userID uuid.UUID

	store     repository.KeyValueStore
	tokenRepo repository.TokenRepository
	cacheRepo repository.ProfileCacheRepository
	limitRepo repository.RateLimitRepository
	syncRepo  repository.SyncRepository
	stateRepo repository.OAuthStateRepository

	oauth     *demo.OAuthService
	github    *demo.GitHubClient
	linkedin  *demo.LinkedInClient
	publisher *mockService.MockEventPublisher

	tokens    *tokenService
	data      *providerDataService
	sync      *syncService
	conflicts *conflictService
}

func createTestEngine(t *testing.T) *engineFixtures {
	t.Helper()

	cfg := newTestConfig()
	clock := newTestClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := blobstore.NewWithBucket(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })

	encryptor, err := crypto.NewSecretboxEncryptor("test passphrase", "test salt")
	require.NoError(t, err)

	tf := &engineFixtures{
		cfg:       cfg,
		clock:     clock,
		userID:    uuid.New(),
		store:     store,
		tokenRepo: securestore.NewTokenRepository(store, encryptor),
		cacheRepo: securestore.NewProfileCacheRepository(store, encryptor),
		limitRepo: securestore.NewRateLimitRepository(store),
		syncRepo:  securestore.NewSyncRepository(store, encryptor),
		stateRepo: securestore.NewOAuthStateRepository(store, encryptor),
		oauth:     demo.NewOAuthService(),
		github:    demo.NewGitHubClient(),
		linkedin:  demo.NewLinkedInClient(),
		publisher: mockService.NewMockEventPublisher(t),
	}

	tf.tokens = NewTokenService(cfg, tf.oauth, oauth.NewStateStore(cfg, tf.stateRepo), tf.tokenRepo, tf.cacheRepo, logger).(*tokenService)
	tf.tokens.now = clock.Now

	tf.data = NewProviderDataService(cfg, tf.tokens, tf.github, tf.linkedin, tf.cacheRepo, tf.limitRepo, logger).(*providerDataService)
	tf.data.now = clock.Now
	tf.data.limiter.now = clock.Now
	tf.data.fetchers[entity.ProviderGitHub].(*githubFetcher).now = clock.Now
	tf.data.fetchers[entity.ProviderLinkedIn].(*linkedinFetcher).now = clock.Now

	locks := NewUserLocks()
	tf.sync = NewSyncService(tf.data, tf.tokenRepo, tf.cacheRepo, tf.limitRepo, tf.syncRepo, tf.stateRepo, tf.publisher, locks, logger).(*syncService)
	tf.sync.now = clock.Now

	tf.conflicts = NewConflictService(tf.syncRepo, locks, logger).(*conflictService)
	tf.conflicts.now = clock.Now

	return tf
}

// connect runs the OAuth handshake for provider with the demo OAuth service.
func (tf *engineFixtures) connect(t *testing.T, provider entity.ProviderType) *entity.AuthToken {
	t.Helper()

	ctx := context.Background()
	auth, err := tf.tokens.AuthorizationURL(ctx, tf.userID, provider)
	require.NoError(t, err)

	token, err := tf.tokens.Authenticate(ctx, tf.userID, provider, &usecase.AuthenticateInput{
		Code:  "code-" + provider.String(),
		State: stateFromURL(t, auth.URL),
	})
	require.NoError(t, err)

	return token
}

func (tf *engineFixtures) connectAll(t *testing.T) {
	t.Helper()

	for _, provider := range entity.Providers {
		tf.connect(t, provider)
	}
}

func (tf *engineFixtures) allowPublish() {
	tf.publisher.EXPECT().PublishProfileSynced(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func stateFromURL(t *testing.T, rawURL string) string {
	t.Helper()

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	return parsed.Query().Get("state")
}
