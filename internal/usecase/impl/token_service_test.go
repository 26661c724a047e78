package impl

import (
	"context"
	"testing"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"
	"profilesync/internal/infra/provider/demo"
	"profilesync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_AuthorizationURL(t *testing.T) {
	tf := createTestEngine(t)

	out, err := tf.tokens.AuthorizationURL(context.Background(), tf.userID, entity.ProviderGitHub)

	require.NoError(t, err)
	assert.NotEmpty(t, out.State)
	assert.Contains(t, out.URL, "client_id=github-client")
	assert.Equal(t, out.State, stateFromURL(t, out.URL))
}

func TestTokenService_AuthorizationURL_UnsupportedProvider(t *testing.T) {
	tf := createTestEngine(t)

	_, err := tf.tokens.AuthorizationURL(context.Background(), tf.userID, entity.ProviderType("myspace"))

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestTokenService_Authenticate_Success(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()

	token := tf.connect(t, entity.ProviderGitHub)

	stored, err := tf.tokenRepo.FindToken(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, token.AccessToken, stored.AccessToken)
	assert.Equal(t, token.RefreshToken, stored.RefreshToken)
	assert.True(t, token.ExpiresAt.Equal(stored.ExpiresAt))

	status, err := tf.tokens.Status(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.True(t, status.Refreshable)
	require.NotNil(t, status.ExpiresAt)
}

func TestTokenService_Authenticate_RejectsUnknownState(t *testing.T) {
	tf := createTestEngine(t)

	_, err := tf.tokens.Authenticate(context.Background(), tf.userID, entity.ProviderGitHub, &usecase.AuthenticateInput{
		Code:  "code",
		State: "forged",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestTokenService_Authenticate_StateIsSingleUse(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()

	auth, err := tf.tokens.AuthorizationURL(ctx, tf.userID, entity.ProviderLinkedIn)
	require.NoError(t, err)
	input := &usecase.AuthenticateInput{Code: "code", State: auth.State}

	_, err = tf.tokens.Authenticate(ctx, tf.userID, entity.ProviderLinkedIn, input)
	require.NoError(t, err)

	_, err = tf.tokens.Authenticate(ctx, tf.userID, entity.ProviderLinkedIn, input)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestTokenService_Authenticate_ExchangeRejected(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()

	auth, err := tf.tokens.AuthorizationURL(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)

	_, err = tf.tokens.Authenticate(ctx, tf.userID, entity.ProviderGitHub, &usecase.AuthenticateInput{
		Code:  demo.RejectedCode,
		State: auth.State,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAuthentication)

	stored, err := tf.tokenRepo.FindToken(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)
	assert.Nil(t, stored, "a rejected exchange must not store a token")
}

func TestTokenService_Authenticate_MissingCode(t *testing.T) {
	tf := createTestEngine(t)

	_, err := tf.tokens.Authenticate(context.Background(), tf.userID, entity.ProviderGitHub, &usecase.AuthenticateInput{State: "s"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTokenService_GetValidToken(t *testing.T) {
	tests := []struct {
		name         string
		stored       func(now time.Time) *entity.AuthToken
		refreshErr   error
		wantToken    bool
		wantRefresh  int
		wantAccess   string
		wantRefreshT string
	}{
		{
			name:        "no token stored",
			stored:      func(time.Time) *entity.AuthToken { return nil },
			wantRefresh: 0,
		},
		{
			name: "valid token is returned untouched",
			stored: func(now time.Time) *entity.AuthToken {
				return &entity.AuthToken{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now.Add(time.Minute)}
			},
			wantToken:    true,
			wantRefresh:  0,
			wantAccess:   "a1",
			wantRefreshT: "r1",
		},
		{
			name: "non-expiring token",
			stored: func(time.Time) *entity.AuthToken {
				return &entity.AuthToken{AccessToken: "a1"}
			},
			wantToken:   true,
			wantRefresh: 0,
			wantAccess:  "a1",
		},
		{
			name: "expired token is refreshed exactly once",
			stored: func(now time.Time) *entity.AuthToken {
				return &entity.AuthToken{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now.Add(-time.Minute)}
			},
			wantToken:    true,
			wantRefresh:  1,
			wantRefreshT: "r1",
		},
		{
			name: "token expiring exactly now counts as expired",
			stored: func(now time.Time) *entity.AuthToken {
				return &entity.AuthToken{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now}
			},
			wantToken:    true,
			wantRefresh:  1,
			wantRefreshT: "r1",
		},
		{
			name: "failed refresh yields no token",
			stored: func(now time.Time) *entity.AuthToken {
				return &entity.AuthToken{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now.Add(-time.Minute)}
			},
			refreshErr:  errors.New("invalid_grant"),
			wantRefresh: 1,
		},
		{
			name: "expired token without refresh token",
			stored: func(now time.Time) *entity.AuthToken {
				return &entity.AuthToken{AccessToken: "a1", ExpiresAt: now.Add(-time.Minute)}
			},
			wantRefresh: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := createTestEngine(t)
			ctx := context.Background()
			tf.oauth.RefreshErr = tt.refreshErr

			if stored := tt.stored(tf.clock.Now()); stored != nil {
				require.NoError(t, tf.tokenRepo.SaveToken(ctx, tf.userID, entity.ProviderGitHub, stored))
			}

			token, err := tf.tokens.GetValidToken(ctx, tf.userID, entity.ProviderGitHub)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRefresh, tf.oauth.RefreshCalls())
			if !tt.wantToken {
				assert.Nil(t, token)
				return
			}
			require.NotNil(t, token)
			if tt.wantAccess != "" {
				assert.Equal(t, tt.wantAccess, token.AccessToken)
			}
			assert.Equal(t, tt.wantRefreshT, token.RefreshToken)
		})
	}
}

func TestTokenService_GetValidToken_PersistsRefreshedToken(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()

	tf.connect(t, entity.ProviderLinkedIn)
	tf.clock.Advance(2 * time.Hour)

	token, err := tf.tokens.GetValidToken(ctx, tf.userID, entity.ProviderLinkedIn)
	require.NoError(t, err)
	require.NotNil(t, token)

	stored, err := tf.tokenRepo.FindToken(ctx, tf.userID, entity.ProviderLinkedIn)
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, stored.AccessToken)
	assert.Equal(t, "demo-refresh-linkedin-code-linkedin", stored.RefreshToken, "refresh token must survive a non-rotating refresh")
}

func TestTokenService_Refresh_Failure(t *testing.T) {
	tf := createTestEngine(t)
	tf.oauth.RefreshErr = errors.New("invalid_grant")

	_, err := tf.tokens.Refresh(context.Background(), tf.userID, entity.ProviderGitHub, &entity.AuthToken{RefreshToken: "r1"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenRefresh)
}

func TestTokenService_Refresh_WithoutRefreshToken(t *testing.T) {
	tf := createTestEngine(t)

	_, err := tf.tokens.Refresh(context.Background(), tf.userID, entity.ProviderGitHub, &entity.AuthToken{AccessToken: "a1"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenRefresh)
	assert.Zero(t, tf.oauth.RefreshCalls())
}

func TestTokenService_Revoke(t *testing.T) {
	tf := createTestEngine(t)
	ctx := context.Background()

	tf.connect(t, entity.ProviderGitHub)
	_, err := tf.data.FetchProviderData(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)

	require.NoError(t, tf.tokens.Revoke(ctx, tf.userID, entity.ProviderGitHub))

	token, err := tf.tokens.GetValidToken(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)
	assert.Nil(t, token)

	cached, err := tf.data.GetCached(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)
	assert.Nil(t, cached)

	status, err := tf.tokens.Status(ctx, tf.userID, entity.ProviderGitHub)
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, tf.tokens.Revoke(ctx, tf.userID, entity.ProviderGitHub), "revoke is idempotent")
}
