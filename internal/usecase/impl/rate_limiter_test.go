package impl

import (
	"context"
	"testing"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRateLimiter(t *testing.T) (*rateLimiter, *engineFixtures) {
	t.Helper()

	tf := createTestEngine(t)

	return tf.data.limiter, tf
}

func TestRateLimiter_RejectsAfterLimit(t *testing.T) {
	limiter, tf := createTestRateLimiter(t)
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, limiter.allow(ctx, tf.userID, entity.ProviderLinkedIn), "request %d", i+1)
	}

	err := limiter.allow(ctx, tf.userID, entity.ProviderLinkedIn)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimitExceeded)

	window, err := tf.limitRepo.FindWindow(ctx, tf.userID, entity.ProviderLinkedIn)
	require.NoError(t, err)
	assert.Equal(t, 3, window.Count, "rejected requests are not counted")
}

func TestRateLimiter_ResetsAfterWindow(t *testing.T) {
	limiter, tf := createTestRateLimiter(t)
	ctx := context.Background()
	start := tf.clock.Now()

	for range 3 {
		require.NoError(t, limiter.allow(ctx, tf.userID, entity.ProviderLinkedIn))
	}

	tf.clock.Advance(time.Hour)
	assert.ErrorIs(t, limiter.allow(ctx, tf.userID, entity.ProviderLinkedIn), domainerrors.ErrRateLimitExceeded,
		"the window is still open at exactly one hour")

	tf.clock.Advance(time.Millisecond)
	require.NoError(t, limiter.allow(ctx, tf.userID, entity.ProviderLinkedIn))

	window, err := tf.limitRepo.FindWindow(ctx, tf.userID, entity.ProviderLinkedIn)
	require.NoError(t, err)
	assert.Equal(t, 1, window.Count)
	assert.True(t, window.WindowStart.After(start))
}

func TestRateLimiter_IsolatedPerProviderAndUser(t *testing.T) {
	limiter, tf := createTestRateLimiter(t)
	ctx := context.Background()

	for range 3 {
		require.NoError(t, limiter.allow(ctx, tf.userID, entity.ProviderLinkedIn))
	}

	assert.NoError(t, limiter.allow(ctx, tf.userID, entity.ProviderGitHub))
	assert.NoError(t, limiter.allow(ctx, uuid.New(), entity.ProviderLinkedIn))
}

func TestRateLimiter_UnsupportedProvider(t *testing.T) {
	limiter, tf := createTestRateLimiter(t)

	err := limiter.allow(context.Background(), tf.userID, entity.ProviderType("myspace"))

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestRateLimiter_ConcurrentRequestsNeverExceedLimit(t *testing.T) {
	limiter, tf := createTestRateLimiter(t)
	ctx := context.Background()

	results := make(chan error, 20)
	for range 20 {
		go func() {
			results <- limiter.allow(ctx, tf.userID, entity.ProviderGitHub)
		}()
	}

	allowed := 0
	for range 20 {
		if err := <-results; err == nil {
			allowed++
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrRateLimitExceeded)
		}
	}
	assert.Equal(t, 5, allowed)
}
