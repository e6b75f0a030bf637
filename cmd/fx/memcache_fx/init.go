package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "royalnano/pkg/memcache"
)

const (
	submissionQuota  = 5
	submissionWindow = time.Hour
	listingCacheTTL  = 60 * time.Second
)

var Module = fx.Provide(
	provideRateLimiter, provideResponseCache,
)

func provideRateLimiter() mem.RateLimiter {
	return mem.NewSlidingWindowLimiter(submissionQuota, submissionWindow)
}

func provideResponseCache() mem.ResponseCache {
	return mem.NewTTLCache(listingCacheTTL)
}
