package session

import "time"

// Store defaults used when the configured values are not positive
const (
	DefaultSize = 10000
	DefaultTTL  = 2 * time.Hour
)
