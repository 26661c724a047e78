// Package provider holds the REST plumbing shared by the provider API clients.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"

	"golang.org/x/oauth2"
)

const maxErrorBody = 512

// RESTClient issues authenticated JSON requests against one provider API.
type RESTClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Headers    map[string]string

	// IsRateLimited reports provider-specific budget exhaustion on non-2xx responses.
	IsRateLimited func(resp *http.Response) bool
}

// GetJSON fetches path with the bearer token and decodes the response into out.
// Non-2xx responses and transport failures are mapped to domain errors.
func (c *RESTClient) GetJSON(ctx context.Context, token *entity.AuthToken, path string, out any) error {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "build provider request")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.authorizedClient(ctx, token).Do(req)
	if err != nil {
		return domainerrors.ErrProviderAPI.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, path); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrProviderAPI.WithDetails(fmt.Sprintf("decode %s: %v", path, err))
	}

	return nil
}

func (c *RESTClient) authorizedClient(ctx context.Context, token *entity.AuthToken) *http.Client {
	base := c.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	tokenType := token.TokenType
	if strings.EqualFold(tokenType, "bearer") || tokenType == "" {
		tokenType = "Bearer"
	}

	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   tokenType,
	}))
}

func (c *RESTClient) checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	details := fmt.Sprintf("GET %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domainerrors.ErrNotAuthenticated.WithDetails(details)
	case resp.StatusCode == http.StatusTooManyRequests:
		return domainerrors.ErrRateLimitExceeded.WithDetails(details)
	case c.IsRateLimited != nil && c.IsRateLimited(resp):
		return domainerrors.ErrRateLimitExceeded.WithDetails(details)
	default:
		return domainerrors.ErrProviderAPI.WithDetails(details)
	}
}
