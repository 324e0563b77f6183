package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Maintenance job scheduled"
	LogMsgJobDisabled  = "Maintenance job disabled"
	LogMsgJobSkipped   = "Maintenance job skipped, worker queue unavailable"
)
