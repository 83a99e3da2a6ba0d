package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the response cache middleware,
// applied to the dashboard and list endpoints. When Enabled is false
// or no Redis client is available, caching is disabled. Methods lists
// the HTTP methods to cache; KeyStrategy decides which request parts
// form the cache key.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables with defaults suited to
// the dashboard: GET only, a short TTL so totals stay fresh after a
// record edit, keys namespaced under "debtiq:cache".
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
		TTL:          durenv("CACHE_TTL", 15*time.Second),
		KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       getenv("CACHE_PREFIX", "debtiq:cache"),
		MaxBodyBytes: intenv("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
