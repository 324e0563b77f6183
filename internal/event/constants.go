package event

import "time"

// EventSchemaVersion is stamped on every event built by this package
const EventSchemaVersion = "1.0"

const (
	// RetryQueueBufferSize caps events waiting for a retry; overflow goes straight to the dead-letter log
	RetryQueueBufferSize = 1000
	MaxRetryDelay        = 5 * time.Minute

	DeadLetterFilePermissions = 0o644
)

const (
	LogMsgEventPublishFailed    = "Publish failed, event queued for retry"
	LogMsgEventRetryFailed      = "Retry failed, backing off"
	LogMsgEventRetrySucceeded   = "Retry delivered event"
	LogMsgEventRetryExhausted   = "Retries exhausted"
	LogMsgRetryQueueFull        = "Retry queue full"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Dead-letter write failed"
	LogMsgEventDroppedShutdown  = "Pending retry abandoned at shutdown"
	LogMsgQueueDrainedShutdown  = "Retry queue drained at shutdown"
	LogMsgShutdownTimeout       = "Publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "%d handler(s) failed for %s: %w"
)

// CalculateRetryDelay is baseDelay doubled once per attempt after the first, never above MaxRetryDelay
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		if delay *= 2; delay >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	return delay
}
