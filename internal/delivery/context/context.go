// Package context carries request-scoped values from the delivery layer to
// the use cases: the request ID and a logger tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header carrying the request ID.
	HeaderXRequestID = echo.HeaderXRequestID
)

// GetRequestID returns the request ID stored on the echo context, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when
// ctx carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
