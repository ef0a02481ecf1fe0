package clients

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_StopsWaitingWhenContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	attempts := 0
	start := time.Now()
	err := withRetry(ctx, 3, time.Hour, func(context.Context) error {
		attempts++
		cancel()
		return errors.New("connection refused")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWithRetry_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	attempts := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		attempts++
		if attempts < 2 {
			return errors.New("EOF")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestWithRetry_GivesUpWithLastError(t *testing.T) {
	t.Parallel()

	attempts := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		attempts++
		return errors.New("i/o timeout")
	})
	assert.EqualError(t, err, "i/o timeout")
	assert.Equal(t, 3, attempts)
}

func TestPolarityKey(t *testing.T) {
	t.Parallel()

	key := polarityKey("I love my job")
	assert.True(t, strings.HasPrefix(key, VALKEY_POLARITY_PREFIX))
	assert.Len(t, key, len(VALKEY_POLARITY_PREFIX)+64)
	assert.Equal(t, key, polarityKey("I love my job"))
	assert.NotEqual(t, key, polarityKey("I hate my job"))
}
