package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLocks_SerializesSameUser(t *testing.T) {
	locks := NewUserLocks()
	userID := uuid.New()

	unlock, err := locks.Lock(context.Background(), userID)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := locks.Lock(context.Background(), userID)
		if err == nil {
			close(acquired)
			second()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired")
	}
}

func TestUserLocks_OtherUsersDoNotBlock(t *testing.T) {
	locks := NewUserLocks()

	unlock, err := locks.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	other, err := locks.Lock(ctx, uuid.New())
	require.NoError(t, err)
	other()
}

func TestUserLocks_HonoursContext(t *testing.T) {
	locks := NewUserLocks()
	userID := uuid.New()

	unlock, err := locks.Lock(context.Background(), userID)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locks.Lock(ctx, userID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.Empty(t, locks.locks, "released locks are dropped from the table")
}
