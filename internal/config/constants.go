package config

import "time"

// Backend modes select where listings and accounts live
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendHTTP     = "http"
)

// Defaults
const (
	DefaultPort                 = "8080"
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultBackendTimeout       = 10 * time.Second
	DefaultBackendRetries       = 2
	DefaultSearchCacheTTL       = 30 * time.Second
	DefaultSessionTTL           = 2 * time.Hour
	DefaultSessionLimit         = 10000
	DefaultSubmitWorkers        = 4
	DefaultSubmitQueueSize      = 100
	DefaultPopularDecayInterval = time.Hour
	DefaultEventMaxRetries      = 3
	DefaultEventRetryDelay      = 500 * time.Millisecond
	DefaultDeadLetterPath       = "logs/deadletter.jsonl"
)
