package worker

import "time"

// DefaultJobTimeout bounds a single job
const DefaultJobTimeout = 30 * time.Second

const (
	ErrMsgPoolStopped = "worker pool is stopped"
	ErrMsgQueueFull   = "worker queue is full"

	LogMsgWorkerJobFailed = "Worker job failed"
)
