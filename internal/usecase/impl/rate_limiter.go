package impl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"

	"github.com/google/uuid"
)

// rateLimiter enforces a fixed request window per user and provider.
// State lives in the key-value store; check-and-increment runs under mu.
type rateLimiter struct {
	repo   repository.RateLimitRepository
	window time.Duration
	limits map[entity.ProviderType]int
	now    func() time.Time

	mu sync.Mutex
}

func newRateLimiter(cfg *config.Config, repo repository.RateLimitRepository) *rateLimiter {
	return &rateLimiter{
		repo:   repo,
		window: cfg.Sync.RateLimitWindow,
		limits: map[entity.ProviderType]int{
			entity.ProviderGitHub:   cfg.Providers.GitHub.RateLimit,
			entity.ProviderLinkedIn: cfg.Providers.LinkedIn.RateLimit,
		},
		now: time.Now,
	}
}

// allow records one request, or fails with ErrRateLimitExceeded when the
// ceiling of the current window has been reached.
func (rl *rateLimiter) allow(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	limit, ok := rl.limits[provider]
	if !ok {
		return domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	current, err := rl.repo.FindWindow(ctx, userID, provider)
	if err != nil {
		return errors.Wrap(err, "failed to read rate limit window")
	}

	var next entity.RateLimitWindow
	switch {
	case current == nil || now.Sub(current.WindowStart) > rl.window:
		next = entity.RateLimitWindow{WindowStart: now, Count: 1}
	case current.Count >= limit:
		retryAt := current.WindowStart.Add(rl.window)

		return domainerrors.ErrRateLimitExceeded.WithDetails(
			fmt.Sprintf("%s allows %d requests per %s, retry after %s",
				provider, limit, rl.window, retryAt.UTC().Format(time.RFC3339)))
	default:
		next = entity.RateLimitWindow{WindowStart: current.WindowStart, Count: current.Count + 1}
	}

	if err := rl.repo.SaveWindow(ctx, userID, provider, &next); err != nil {
		return errors.Wrap(err, "failed to save rate limit window")
	}

	return nil
}
