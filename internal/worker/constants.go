package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerJobDropped is logged when the queue is full or the pool has stopped
	LogMsgWorkerJobDropped = "Worker queue full, job dropped"
)
