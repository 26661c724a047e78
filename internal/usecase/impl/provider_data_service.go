package impl

import (
	"context"
	"log/slog"
	"time"

	"profilesync/config"
	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
)

// providerDataService implements the ProviderDataUsecase interface.
type providerDataService struct {
	tokens       usecase.TokenUsecase
	limiter      *rateLimiter
	cacheRepo    repository.ProfileCacheRepository
	fetchers     map[entity.ProviderType]providerFetcher
	fetchTimeout time.Duration
	cacheTTL     time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewProviderDataService is the constructor for providerDataService.
func NewProviderDataService(
	cfg *config.Config,
	tokens usecase.TokenUsecase,
	githubClient service.GitHubClient,
	linkedinClient service.LinkedInClient,
	cacheRepo repository.ProfileCacheRepository,
	rateLimitRepo repository.RateLimitRepository,
	logger *slog.Logger,
) usecase.ProviderDataUsecase {
	return &providerDataService{
		tokens:    tokens,
		limiter:   newRateLimiter(cfg, rateLimitRepo),
		cacheRepo: cacheRepo,
		fetchers: map[entity.ProviderType]providerFetcher{
			entity.ProviderGitHub:   &githubFetcher{client: githubClient, now: time.Now},
			entity.ProviderLinkedIn: &linkedinFetcher{client: linkedinClient, now: time.Now},
		},
		fetchTimeout: cfg.Sync.FetchTimeout,
		cacheTTL:     cfg.Sync.CacheTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *providerDataService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchProviderData fetches a fresh payload from the provider and caches it.
func (srv *providerDataService) FetchProviderData(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (entity.ProviderProfileData, error) {
	fetcher, ok := srv.fetchers[provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	token, err := srv.tokens.GetValidToken(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domainerrors.ErrNotAuthenticated.WithDetails(provider.String())
	}

	if err := srv.limiter.allow(ctx, userID, provider); err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, srv.fetchTimeout)
	defer cancel()

	start := srv.now()
	data, err := fetcher.fetch(fetchCtx, token)
	if err != nil {
		return nil, srv.classifyFetchError(fetchCtx, provider, err)
	}

	if err := srv.cacheRepo.SaveCached(ctx, userID, provider, data, srv.now()); err != nil {
		srv.log(ctx).Warn("Failed to cache provider data",
			slog.Any("user_id", userID),
			slog.String("provider", provider.String()),
			slog.Any("error", err))
	}

	srv.log(ctx).Debug("Provider data fetched",
		slog.Any("user_id", userID),
		slog.String("provider", provider.String()),
		slog.Duration("elapsed", srv.now().Sub(start)))

	return data, nil
}

func (srv *providerDataService) classifyFetchError(fetchCtx context.Context, provider entity.ProviderType, err error) error {
	if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrProviderAPI.WithDetails(provider.String() + " request timed out after " + srv.fetchTimeout.String())
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.ErrProviderAPI.WithDetails(provider.String() + ": " + err.Error())
}

// GetCached returns the cached payload while it is younger than the cache TTL.
func (srv *providerDataService) GetCached(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (entity.ProviderProfileData, error) {
	if !provider.IsValid() {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	cached, err := srv.cacheRepo.FindCached(ctx, userID, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached provider data")
	}
	if cached == nil || srv.now().Sub(cached.CachedAt) >= srv.cacheTTL {
		return nil, nil
	}

	return cached.Data, nil
}
