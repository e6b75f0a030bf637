package mem

import (
	"sync"
	"time"
)

// RateLimiter counts accepted submissions per client key over a sliding
// window. Denied attempts consume nothing. State lives in process memory:
// each instance enforces its own quota and a restart resets every client.
type RateLimiter interface {
	Allow(clientKey string) bool
}

type SlidingWindowLimiter struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
	quota   int
	window  time.Duration
	nowFunc func() time.Time // injectable clock for testing
}

func NewSlidingWindowLimiter(quota int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		buckets: make(map[string][]time.Time),
		quota:   quota,
		window:  window,
		nowFunc: time.Now,
	}
}

// Allow prunes timestamps older than the window, denies when the remaining
// count has reached the quota, and otherwise records the current attempt.
// Check and record happen under one lock so two near-quota requests from the
// same client cannot both slip in.
func (l *SlidingWindowLimiter) Allow(clientKey string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	recent := l.buckets[clientKey][:0]
	for _, t := range l.buckets[clientKey] {
		if now.Sub(t) < l.window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.quota {
		l.buckets[clientKey] = recent
		return false
	}

	l.buckets[clientKey] = append(recent, now)
	return true
}
