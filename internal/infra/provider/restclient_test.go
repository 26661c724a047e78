package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))
		_, _ = w.Write([]byte(`{"login":"octo"}`))
	}))
	defer server.Close()

	client := &RESTClient{BaseURL: server.URL, HTTPClient: server.Client(), Headers: map[string]string{"X-Custom": "yes"}}

	var out struct {
		Login string `json:"login"`
	}
	err := client.GetJSON(context.Background(), &entity.AuthToken{AccessToken: "secret", TokenType: "bearer"}, "/user", &out)
	require.NoError(t, err)
	assert.Equal(t, "octo", out.Login)
}

func TestRESTClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  map[string]string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: domainerrors.ErrNotAuthenticated},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: domainerrors.ErrRateLimitExceeded},
		{name: "budget exhausted", status: http.StatusForbidden, header: map[string]string{"X-RateLimit-Remaining": "0"}, wantErr: domainerrors.ErrRateLimitExceeded},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domainerrors.ErrProviderAPI},
		{name: "server error", status: http.StatusInternalServerError, wantErr: domainerrors.ErrProviderAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := &RESTClient{
				BaseURL:    server.URL,
				HTTPClient: server.Client(),
				IsRateLimited: func(resp *http.Response) bool {
					return resp.Header.Get("X-RateLimit-Remaining") == "0"
				},
			}

			var out map[string]any
			err := client.GetJSON(context.Background(), &entity.AuthToken{AccessToken: "t"}, "/x", &out)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRESTClient_TimeoutIsProviderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := &RESTClient{BaseURL: server.URL, HTTPClient: server.Client()}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var out map[string]any
	err := client.GetJSON(ctx, &entity.AuthToken{AccessToken: "t"}, "/slow", &out)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderAPI))
}
