package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"profilesync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONCarriesServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "profilesync"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("sync finished", "user_id", "u-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "sync finished", line["msg"])
	assert.Equal(t, "profilesync", line["service"])
	assert.Equal(t, "u-1", line["user_id"])
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("token exchanged",
		slog.String("access_token", "gho_secret"),
		slog.String("Refresh_Token", "r-secret"),
		slog.String("provider", "github"),
	)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, redacted, line["access_token"])
	assert.Equal(t, redacted, line["Refresh_Token"])
	assert.Equal(t, "github", line["provider"])
	assert.NotContains(t, buf.String(), "gho_secret")
}
