package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profilesync/config"
	deliverycontext "profilesync/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generates when missing", incoming: "", reuse: false},
		{name: "reuses a well formed id", incoming: "trace-42_a.b", reuse: true},
		{name: "replaces ids with unsafe characters", incoming: "abc\ninjected", reuse: false},
		{name: "replaces overlong ids", incoming: strings.Repeat("a", maxRequestIDLength+1), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var seenEcho, seenCtx string
			e.GET("/", mw.Process(func(c echo.Context) error {
				seenEcho = deliverycontext.GetRequestID(c)
				seenCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seenEcho)
			assert.Equal(t, seenEcho, seenCtx)
			assert.Equal(t, seenEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.reuse {
				assert.Equal(t, tt.incoming, seenEcho)
			} else {
				assert.NotEqual(t, tt.incoming, seenEcho)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	mw := NewLoggerMiddleware(logger, cfg)
	e.GET("/integrations/:provider/status", mw.Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/integrations/github/status", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"provider":"github"`)
	assert.Contains(t, buf.String(), `"route":"/integrations/:provider/status"`)
}

func TestLoggerMiddleware_DisabledOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	mw := NewLoggerMiddleware(logger, &config.Config{})
	e.GET("/", mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, buf.String())
}
