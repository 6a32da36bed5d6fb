package worker

import "time"

// ============================================================================
// Worker Names
// ============================================================================

// AuditWorkerName identifies the count audit worker in logs
const AuditWorkerName = "count audit worker"

// DefaultAuditInterval is used when the configuration does not set AUDIT_INTERVAL
const DefaultAuditInterval = 5 * time.Minute

// ============================================================================
// Log Messages - Lifecycle
// ============================================================================

const (
	LogMsgWorkerShuttingDown     = "Shutting down worker"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout, work may still be running"
)

// ============================================================================
// Log Messages - Audit Worker
// ============================================================================

const (
	LogMsgAuditDisabled = "Count audit disabled"
	LogMsgAuditStarted  = "Count audit worker started"
	LogMsgAuditPassed   = "Count audit passed"
	LogMsgAuditDrift    = "Count audit found category count drift"
	LogMsgAuditFailed   = "Count audit failed"
)
