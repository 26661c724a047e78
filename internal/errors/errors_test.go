package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return "coded: " + e.code }

func TestAsType(t *testing.T) {
	t.Run("finds a wrapped error", func(t *testing.T) {
		err := Wrap(fmt.Errorf("outer: %w", &codedError{code: "E1"}), "context")

		got, ok := AsType[*codedError](err)
		require.True(t, ok)
		assert.Equal(t, "E1", got.code)
	})

	t.Run("reports a miss", func(t *testing.T) {
		got, ok := AsType[*codedError](New("plain"))
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("nil error", func(t *testing.T) {
		_, ok := AsType[*codedError](nil)
		assert.False(t, ok)
	})
}

func TestWrapKeepsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestWrapPreservesIs(t *testing.T) {
	sentinel := New("sentinel")

	assert.True(t, Is(Wrapf(sentinel, "step %d", 2), sentinel))
	assert.Contains(t, Errorf("failed %s", "x").Error(), "failed x")
}
