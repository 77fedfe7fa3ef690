package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("read: connection reset by peer")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent errors are not retried", func(t *testing.T) {
		calls := 0
		permanent := errors.New(`duplicate key value violates unique constraint`)
		err := RetryOnTransientError(ctx, fastRetryConfig(), func() error {
			calls++
			return permanent
		}, log)

		assert.Equal(t, permanent, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(), func() error {
			calls++
			return errors.New("deadlock detected")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		config := fastRetryConfig()
		config.RetryInterval = time.Hour
		config.MaxInterval = time.Hour
		err := RetryOnTransientError(canceled, config, func() error {
			return errors.New("server closed the connection unexpectedly")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoff(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, config))
}
