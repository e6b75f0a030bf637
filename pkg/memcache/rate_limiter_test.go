package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiterQuota(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(5, time.Hour)
	limiter.nowFunc = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"), "submission %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("203.0.113.7"), "6th submission within the window should be denied")
}

func TestSlidingWindowLimiterWindowExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(5, time.Hour)
	limiter.nowFunc = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"))
	}
	assert.False(t, limiter.Allow("203.0.113.7"))

	now = now.Add(time.Hour + time.Second)
	assert.True(t, limiter.Allow("203.0.113.7"), "quota should reset once the window has elapsed")
}

func TestSlidingWindowLimiterDenialConsumesNothing(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(2, time.Hour)
	limiter.nowFunc = func() time.Time { return now }

	assert.True(t, limiter.Allow("k"))
	assert.True(t, limiter.Allow("k"))
	for i := 0; i < 10; i++ {
		assert.False(t, limiter.Allow("k"))
	}

	// only the two accepted timestamps are on record
	assert.Len(t, limiter.buckets["k"], 2)
}

func TestSlidingWindowLimiterIsolatesClients(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, time.Hour)

	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "another client keeps its own quota")
}
