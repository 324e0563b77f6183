package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgPanicRecovered   = "Recovered from handler panic"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderForwardedFor  = "X-Forwarded-For"
	HeaderRequestID     = "X-Request-ID"
)

// PublicPaths are path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// QuietPaths are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

const RedactedValue = "[REDACTED]"

// Request body limits
const (
	DefaultMaxBodyBytes = 1 << 20
	// UploadMaxBodyBytes leaves room for multipart framing around an 8MB image
	UploadMaxBodyBytes = 9 << 20
	UploadPathSuffix   = "/images/upload"
)

// Per-IP monitoring thresholds
const (
	RateWindow           = 5 * time.Minute
	RateLimitPerWindow   = 1000
	RateAlertEvery       = 100
	FailedAuthAlertLimit = 5
	MaxTrackedClients    = 50000
)

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 30 * time.Second
	WriteTimeout      = 60 * time.Second
	IdleTimeout       = 120 * time.Second
)
