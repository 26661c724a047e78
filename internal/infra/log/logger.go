// Package logs builds the process-wide slog.Logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"profilesync/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

const redacted = "[REDACTED]"

// secretKeys are attribute keys whose values never reach the log output.
var secretKeys = map[string]struct{}{
	"access_token":  {},
	"refresh_token": {},
	"client_secret": {},
	"authorization": {},
}

func redactSecrets(_ []string, attr slog.Attr) slog.Attr {
	if _, ok := secretKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, redacted)
	}

	return attr
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Env.Debug,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if name := cfg.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name), slog.String("env", cfg.Env.Env))
	}

	return logger, nil
}

// parseLogLevel maps a configured level name onto slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	switch name := strings.ToLower(strings.TrimSpace(level)); name {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	default:
		if err := parsed.UnmarshalText([]byte(name)); err != nil {
			return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
		}
	}

	return parsed, nil
}
