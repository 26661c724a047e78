// Package response writes the JSON envelopes every API endpoint returns.
package response

import (
	"net/http"

	deliverycontext "profilesync/internal/delivery/context"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a successful payload
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failure to the client.
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "VALIDATION_FAILED"
	Message string `json:"message"`           // shown to the user
	Details any    `json:"details,omitempty"` // 4xx only, never on 401/403
}

// MetaInfo carries the request ID
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

const codeInvalidInput = "INVALID_INPUT"

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// exposesDetails reports whether details may be sent with status.
func exposesDetails(status int) bool {
	switch {
	case status >= http.StatusInternalServerError:
		return false
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return false
	default:
		return true
	}
}

// Success writes data with statusCode.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for server errors and
// for authentication failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	info := &ErrorInfo{Code: errorCode, Message: message}
	if exposesDetails(statusCode) {
		info.Details = details
	}

	return c.JSON(statusCode, ErrorResponse{Error: info, Meta: meta(c)})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InvalidInput reports a body or path that could not be bound.
func InvalidInput(c echo.Context, message string) error {
	return BadRequest(c, codeInvalidInput, message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// Internal writes the generic internal error without leaking err.
func Internal(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrInternalError)
}

// FromAppError writes appErr with its own status and business code.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError writes err when it is an application error and returns
// anything else to Echo's error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return FromAppError(c, appErr)
	}

	return errors.WithStack(err)
}
