package demo

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
)

// RejectedCode is an authorization code the demo OAuth service always rejects.
const RejectedCode = "denied"

// OAuthService issues tokens without contacting a provider.
type OAuthService struct {
	mu sync.Mutex

	// TokenTTL is the lifetime of issued access tokens; zero issues non-expiring tokens.
	TokenTTL time.Duration
	// RefreshErr, when set, fails every refresh.
	RefreshErr error

	now          func() time.Time
	issued       int
	refreshCalls int
}

// NewOAuthService creates a demo OAuth service issuing one-hour tokens.
func NewOAuthService() *OAuthService {
	return &OAuthService{TokenTTL: time.Hour, now: time.Now}
}

// RefreshCalls returns how many refreshes were attempted.
func (s *OAuthService) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshCalls
}

func (s *OAuthService) AuthCodeURL(provider entity.ProviderType, cfg entity.OAuthConfig, state string) (string, error) {
	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("redirect_uri", cfg.RedirectURI)
	q.Set("state", state)

	return fmt.Sprintf("https://demo.invalid/%s/authorize?%s", provider, q.Encode()), nil
}

func (s *OAuthService) Exchange(_ context.Context, provider entity.ProviderType, _ entity.OAuthConfig, code string) (*entity.AuthToken, error) {
	if code == "" || code == RejectedCode {
		return nil, errors.Errorf("authorization code rejected by %s", provider)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.issueLocked(provider, fmt.Sprintf("demo-refresh-%s-%s", provider, code)), nil
}

func (s *OAuthService) Refresh(_ context.Context, provider entity.ProviderType, _ entity.OAuthConfig, refreshToken string) (*entity.AuthToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshCalls++
	if s.RefreshErr != nil {
		return nil, s.RefreshErr
	}
	if refreshToken == "" {
		return nil, errors.New("refresh token required")
	}

	// Providers that do not rotate refresh tokens return none.
	token := s.issueLocked(provider, "")

	return token, nil
}

func (s *OAuthService) issueLocked(provider entity.ProviderType, refreshToken string) *entity.AuthToken {
	s.issued++
	token := &entity.AuthToken{
		AccessToken:  fmt.Sprintf("demo-access-%s-%d", provider, s.issued),
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}
	if s.TokenTTL > 0 {
		token.ExpiresAt = s.now().Add(s.TokenTTL)
	}

	return token
}

var _ service.OAuthService = (*OAuthService)(nil)
