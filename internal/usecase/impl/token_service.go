// Package impl contains the application-specific business rules implementations.
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

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	providers *config.ProvidersConfig
	oauth     service.OAuthService
	states    service.OAuthStateStore
	tokenRepo repository.TokenRepository
	cacheRepo repository.ProfileCacheRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(
	cfg *config.Config,
	oauth service.OAuthService,
	states service.OAuthStateStore,
	tokenRepo repository.TokenRepository,
	cacheRepo repository.ProfileCacheRepository,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenService{
		providers: cfg.Providers,
		oauth:     oauth,
		states:    states,
		tokenRepo: tokenRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tokenService) oauthConfig(provider entity.ProviderType) (entity.OAuthConfig, error) {
	if !provider.IsValid() {
		return entity.OAuthConfig{}, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}
	providerCfg, ok := srv.providers.Provider(provider)
	if !ok {
		return entity.OAuthConfig{}, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	return providerCfg.OAuthConfig(), nil
}

// AuthorizationURL issues a CSRF state and returns the provider consent URL bound to it.
func (srv *tokenService) AuthorizationURL(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*usecase.AuthorizationOutput, error) {
	oauthCfg, err := srv.oauthConfig(provider)
	if err != nil {
		return nil, err
	}

	state, err := srv.states.Generate(ctx, userID, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate oauth state")
	}

	authURL, err := srv.oauth.AuthCodeURL(provider, oauthCfg, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build authorization url")
	}

	srv.log(ctx).Debug("Authorization URL issued", slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return &usecase.AuthorizationOutput{URL: authURL, State: state}, nil
}

// Authenticate exchanges the authorization code and stores the resulting token.
func (srv *tokenService) Authenticate(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, input *usecase.AuthenticateInput) (*entity.AuthToken, error) {
	oauthCfg, err := srv.oauthConfig(provider)
	if err != nil {
		return nil, err
	}
	if input == nil || input.Code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authorization code is required")
	}

	if err := srv.states.Validate(ctx, input.State, userID, provider); err != nil {
		return nil, err
	}

	token, err := srv.oauth.Exchange(ctx, provider, oauthCfg, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Authorization code exchange failed",
			slog.Any("user_id", userID),
			slog.String("provider", provider.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrAuthentication.WithDetails(err.Error())
	}

	if err := srv.tokenRepo.SaveToken(ctx, userID, provider, token); err != nil {
		return nil, errors.Wrap(err, "failed to save token")
	}

	srv.log(ctx).Info("Provider connected", slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return token, nil
}

// GetValidToken returns the stored token, refreshing it once when expired.
// Nil is returned when no token is stored, when it cannot be refreshed, or
// when the refresh attempt fails.
func (srv *tokenService) GetValidToken(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.AuthToken, error) {
	if !provider.IsValid() {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	token, err := srv.tokenRepo.FindToken(ctx, userID, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find token")
	}
	if token == nil {
		return nil, nil
	}
	if !token.IsExpired(srv.now()) {
		return token, nil
	}

	if !token.CanRefresh() {
		srv.log(ctx).Warn("Token expired without refresh token",
			slog.Any("user_id", userID),
			slog.String("provider", provider.String()))

		return nil, nil
	}

	refreshed, err := srv.Refresh(ctx, userID, provider, token)
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed",
			slog.Any("user_id", userID),
			slog.String("provider", provider.String()),
			slog.Any("error", err))

		return nil, nil
	}

	return refreshed, nil
}

// Refresh trades the refresh token for a new access token and persists it.
func (srv *tokenService) Refresh(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, token *entity.AuthToken) (*entity.AuthToken, error) {
	oauthCfg, err := srv.oauthConfig(provider)
	if err != nil {
		return nil, err
	}
	if token == nil || !token.CanRefresh() {
		return nil, domainerrors.ErrTokenRefresh.WithDetails("no refresh token available")
	}

	refreshed, err := srv.oauth.Refresh(ctx, provider, oauthCfg, token.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenRefresh.WithDetails(err.Error())
	}

	// Providers that do not rotate refresh tokens omit them from the response.
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = token.RefreshToken
	}

	if err := srv.tokenRepo.SaveToken(ctx, userID, provider, refreshed); err != nil {
		return nil, errors.Wrap(err, "failed to save refreshed token")
	}

	srv.log(ctx).Info("Token refreshed", slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return refreshed, nil
}

// Revoke forgets the provider token and its cached payload.
func (srv *tokenService) Revoke(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	if !provider.IsValid() {
		return domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	if err := srv.tokenRepo.DeleteToken(ctx, userID, provider); err != nil {
		return errors.Wrap(err, "failed to delete token")
	}
	if err := srv.cacheRepo.DeleteCached(ctx, userID, provider); err != nil {
		return errors.Wrap(err, "failed to delete cached provider data")
	}

	srv.log(ctx).Info("Provider disconnected", slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return nil
}

// Status reports whether the provider is connected, without refreshing.
func (srv *tokenService) Status(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.ConnectionStatus, error) {
	if !provider.IsValid() {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	token, err := srv.tokenRepo.FindToken(ctx, userID, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find token")
	}

	status := &entity.ConnectionStatus{Provider: provider}
	if token == nil {
		return status, nil
	}

	status.Connected = !token.IsExpired(srv.now()) || token.CanRefresh()
	status.Refreshable = token.CanRefresh()
	if !token.ExpiresAt.IsZero() {
		expiresAt := token.ExpiresAt
		status.ExpiresAt = &expiresAt
	}

	return status, nil
}
