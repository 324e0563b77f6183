package logger

// LOG_LEVEL values; "warning" is an alias for "warn" and anything unknown logs at info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// LogFormatJSON selects the JSON handler; every other LOG_FORMAT is text
const LogFormatJSON = "json"

const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
