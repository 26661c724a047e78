package errors

import (
	"net/http"

	"profilesync/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business error code, so
// errors derived through WithDetails still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Provider authentication errors
	ErrAuthentication = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"第三方帳號授權失敗",
		"",
	)

	ErrTokenRefresh = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REFRESH_FAILED",
		"授權已過期，請重新連結帳號",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"尚未連結此第三方帳號",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"無效或已過期的授權狀態",
		"",
	)

	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"不支援的第三方服務",
		"",
	)

	// Provider API errors
	ErrRateLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMIT_EXCEEDED",
		"請求次數已達上限，請稍後再試",
		"",
	)

	ErrProviderAPI = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_API_ERROR",
		"第三方服務暫時無法使用",
		"",
	)

	// Synchronization errors
	ErrConflictNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFLICT_NOT_FOUND",
		"找不到該資料衝突",
		"",
	)

	ErrInvalidResolution = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESOLUTION",
		"無效的衝突處理方式",
		"",
	)

	ErrSnapshotNotFound = NewBaseError(
		http.StatusNotFound,
		"SNAPSHOT_NOT_FOUND",
		"尚未進行任何同步",
		"",
	)

	ErrBackgroundSyncUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKGROUND_SYNC_UNAVAILABLE",
		"背景同步目前無法使用",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)
)

// CodeStorageFailed is the business error code of every StorageError.
const CodeStorageFailed = "STORAGE_FAILED"

// StorageError represents a key-value store failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying store error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return CodeStorageFailed
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "資料存取失敗"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
