package bootstrap

const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Session log files are named so that lexical order is creation order
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// Readiness check names reported by /readyz
const (
	CheckDatabase = "database"
	CheckRedis    = "redis"
)

const (
	ServiceNameListing = "listing"
	ServiceNameSearch  = "search"
)

const (
	ErrMsgFailedCreateLogsDir            = "failed to create logs directory"
	ErrMsgFailedOpenLogFile              = "failed to open log file"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedCatalogLoader            = "failed to create catalog loader"
	ErrMsgFailedLoadCatalog              = "failed to load catalog"
	ErrMsgFailedConnectDB                = "failed to connect to database"
	ErrMsgFailedMigrate                  = "failed to run migrations"
	ErrMsgFailedConnectRedis             = "failed to connect to redis"
	ErrMsgFailedCreateStorage            = "failed to create image storage client"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
)

const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStartingService            = "Starting BabyBank"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgFailedDeleteOldLog         = "Failed to delete old log file"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgCatalogReady               = "Catalog ready"
	LogMsgBackendSelected            = "Listing backend selected"
	LogMsgSearchCacheEnabled         = "Search result cache enabled"
	LogMsgImageStorageEnabled        = "Image storage enabled"
	LogMsgImageStorageDisabled       = "Image storage not configured, uploads disabled"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventReceived              = "Event received"
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher"
	LogMsgStoppingSubmitPool         = "Stopping submission workers"
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgServiceShutdownFailed      = "Service shutdown failed"
)
