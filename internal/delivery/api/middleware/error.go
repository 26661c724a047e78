package middleware

import (
	"log/slog"

	"profilesync/internal/delivery/api/response"
	deliverycontext "profilesync/internal/delivery/context"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders errors that escape handlers as API envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= 500 {
			m.logFailure(c, "Request failed", err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.FromAppError(c, appErr)

		return
	}

	// Routing and binding failures raised by Echo itself
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message, isString := httpErr.Message.(string)
		if !isString {
			message = "An error occurred"
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logFailure(c, "Unhandled error", err)
	_ = response.Internal(c)
}

func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error, attrs ...any) {
	req := c.Request()
	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error(msg, attrs...)
}
