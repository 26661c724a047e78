package errors

import (
	"net/http"
	"testing"

	"profilesync/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByErrorCode(t *testing.T) {
	detailed := ErrRateLimitExceeded.WithDetails("github budget exhausted")
	wrapped := errors.Wrap(detailed, "fetch github")

	assert.True(t, errors.Is(wrapped, ErrRateLimitExceeded))
	assert.False(t, errors.Is(wrapped, ErrProviderAPI))
	assert.Equal(t, "github budget exhausted", detailed.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	err := ErrConflictNotFound.WrapMessage("conflict abc")

	var appErr AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
		assert.Equal(t, "CONFLICT_NOT_FOUND", appErr.ErrorCode())
	}
}

func TestStorageError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError(cause, "write token")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeStorageFailed, err.ErrorCode())
	assert.Equal(t, "STORAGE_FAILED", CodeStorageFailed)
	assert.Contains(t, err.Error(), "disk full")
}
