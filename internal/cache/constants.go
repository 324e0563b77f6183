package cache

import "time"

const (
	// searchKeyPrefix prefixes cached search result keys
	searchKeyPrefix = "babybank:search:"

	// generationKey is bumped on every listing write; cached searches from older generations are ignored
	generationKey = "babybank:search:generation"

	// DefaultSearchTTL is how long a cached result set stays valid
	DefaultSearchTTL = 30 * time.Second

	connectTimeout = 5 * time.Second
)

// Log messages
const (
	LogMsgRedisConnected     = "Redis connected"
	LogMsgCacheGetFailed     = "Search cache read failed"
	LogMsgCacheSetFailed     = "Search cache write failed"
	LogMsgCacheInvalidateErr = "Search cache invalidation failed"
)
