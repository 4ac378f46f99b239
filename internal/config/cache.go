package config

import "time"

// CacheConfig defines settings for the browse-page response cache.  Caching
// is opt-in: upcoming-show counts depend on the wall clock, so stale pages
// are only acceptable when an operator explicitly chooses a TTL.  When
// Enabled is false or no Redis client is available the middleware is a
// pass-through.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_* environment variables with defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", false),
		TTL:     envDur("CACHE_TTL", 15*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "cache"),
	}
}
