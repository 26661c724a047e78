// Package oauth implements the provider OAuth 2.0 flows on golang.org/x/oauth2.
package oauth

import (
	"context"
	"net/http"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/linkedin"
)

const defaultHTTPTimeout = 15 * time.Second

// Service exchanges and refreshes provider tokens.
type Service struct {
	endpoints  map[entity.ProviderType]oauth2.Endpoint
	httpClient *http.Client
}

// NewService builds the OAuth service, honouring endpoint overrides from configuration.
func NewService(cfg *config.Config) service.OAuthService {
	endpoints := map[entity.ProviderType]oauth2.Endpoint{
		entity.ProviderGitHub:   withOverrides(github.Endpoint, cfg.Providers.GitHub),
		entity.ProviderLinkedIn: withOverrides(linkedin.Endpoint, cfg.Providers.LinkedIn),
	}

	return NewServiceWithEndpoints(endpoints, &http.Client{Timeout: defaultHTTPTimeout})
}

// NewServiceWithEndpoints creates a Service with explicit endpoints.
func NewServiceWithEndpoints(endpoints map[entity.ProviderType]oauth2.Endpoint, httpClient *http.Client) *Service {
	return &Service{endpoints: endpoints, httpClient: httpClient}
}

func withOverrides(endpoint oauth2.Endpoint, cfg config.ProviderConfig) oauth2.Endpoint {
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	return endpoint
}

func (s *Service) oauth2Config(provider entity.ProviderType, cfg entity.OAuthConfig) (*oauth2.Config, error) {
	endpoint, ok := s.endpoints[provider]
	if !ok {
		return nil, errors.Errorf("no oauth endpoint for provider %s", provider)
	}

	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       cfg.Scopes,
		Endpoint:     endpoint,
	}, nil
}

func (s *Service) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

func (s *Service) AuthCodeURL(provider entity.ProviderType, cfg entity.OAuthConfig, state string) (string, error) {
	conf, err := s.oauth2Config(provider, cfg)
	if err != nil {
		return "", err
	}

	return conf.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (s *Service) Exchange(ctx context.Context, provider entity.ProviderType, cfg entity.OAuthConfig, code string) (*entity.AuthToken, error) {
	conf, err := s.oauth2Config(provider, cfg)
	if err != nil {
		return nil, err
	}

	token, err := conf.Exchange(s.withClient(ctx), code)
	if err != nil {
		return nil, describeTokenError(err, "exchange authorization code")
	}

	return toAuthToken(token), nil
}

func (s *Service) Refresh(ctx context.Context, provider entity.ProviderType, cfg entity.OAuthConfig, refreshToken string) (*entity.AuthToken, error) {
	conf, err := s.oauth2Config(provider, cfg)
	if err != nil {
		return nil, err
	}

	// An empty access token forces the token source to hit the token endpoint.
	source := conf.TokenSource(s.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, describeTokenError(err, "refresh token")
	}

	return toAuthToken(token), nil
}

func toAuthToken(token *oauth2.Token) *entity.AuthToken {
	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &entity.AuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
		TokenType:    tokenType,
	}
}

func describeTokenError(err error, action string) error {
	if retrieveErr, ok := errors.AsType[*oauth2.RetrieveError](err); ok && retrieveErr.ErrorCode != "" {
		return errors.Wrapf(err, "%s: %s", action, retrieveErr.ErrorCode)
	}

	return errors.Wrap(err, action)
}
