package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	before := time.Now()
	now := provider.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
	assert.GreaterOrEqual(t, provider.Since(before), time.Duration(0))
}
