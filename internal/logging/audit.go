package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuditEventType identifies what kind of event an audit entry records.
type AuditEventType string

const (
	// Generation run lifecycle
	AuditRunStart    AuditEventType = "run_start"
	AuditRunComplete AuditEventType = "run_complete"
	AuditRunAbort    AuditEventType = "run_abort"

	// Workspace file operations
	AuditFileWrite AuditEventType = "file_write"
	AuditFileSkip  AuditEventType = "file_skip"
	AuditFileError AuditEventType = "file_error"

	// Coverage and drift
	AuditScan          AuditEventType = "scan"
	AuditDriftDetected AuditEventType = "drift_detected"

	// Content verification
	AuditVerifyPass AuditEventType = "verify_pass"
	AuditVerifyFail AuditEventType = "verify_fail"

	// Watcher activity
	AuditWatchEvent AuditEventType = "watch_event"

	// Performance
	AuditPerfMetric AuditEventType = "perf_metric"
	AuditPerfSlow   AuditEventType = "perf_slow"

	// Errors
	AuditErrorGeneric  AuditEventType = "error_generic"
	AuditErrorCritical AuditEventType = "error_critical"
)

// AuditEvent is one JSON line in the audit log.
type AuditEvent struct {
	Timestamp  int64                  `json:"ts"` // Unix milliseconds
	EventType  AuditEventType         `json:"event"`
	Category   string                 `json:"cat,omitempty"`
	RunID      string                 `json:"run,omitempty"`   // Generation run correlation
	Topic      string                 `json:"topic,omitempty"` // Topic directory, e.g. 07_maps
	Level      string                 `json:"level,omitempty"` // basic/intermediate/advanced
	Path       string                 `json:"path,omitempty"`  // Workspace-relative file path
	Success    bool                   `json:"success"`
	DurationMs int64                  `json:"dur_ms,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Message    string                 `json:"msg"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

var (
	auditFile   *os.File
	auditMu     sync.Mutex
	auditLogger *AuditLogger
)

// AuditLogger writes structured audit events, optionally scoped to a run.
type AuditLogger struct {
	runID    string
	category Category
}

// InitAudit opens the audit log file. No-op unless debug mode is on.
func InitAudit() error {
	if !IsDebugMode() {
		return nil
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		return nil // Already initialized
	}

	date := time.Now().Format("2006-01-02")
	auditPath := filepath.Join(logsDir, fmt.Sprintf("%s_audit.log", date))

	file, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	auditFile = file

	header := fmt.Sprintf("# Audit log started at %s\n# Format: one JSON event per line\n", time.Now().Format(time.RFC3339))
	auditFile.WriteString(header)

	return nil
}

// CloseAudit closes the audit log file.
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		auditFile.Close()
		auditFile = nil
	}
}

// Audit returns the global audit logger.
func Audit() *AuditLogger {
	if auditLogger == nil {
		auditLogger = &AuditLogger{}
	}
	return auditLogger
}

// AuditWithRun creates an audit logger scoped to a generation run.
func AuditWithRun(runID string) *AuditLogger {
	return &AuditLogger{runID: runID}
}

// AuditWithContext creates an audit logger scoped to a run and category.
func AuditWithContext(runID string, category Category) *AuditLogger {
	return &AuditLogger{runID: runID, category: category}
}

// Log writes an audit event.
func (a *AuditLogger) Log(event AuditEvent) {
	if !IsDebugMode() || auditFile == nil {
		return
	}

	// Fill in defaults
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	if event.RunID == "" && a.runID != "" {
		event.RunID = a.runID
	}
	if event.Category == "" && a.category != "" {
		event.Category = string(a.category)
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	data, err := json.Marshal(event)
	if err == nil {
		auditFile.WriteString(string(data) + "\n")
	}
}

// RunStart logs the start of a generation run.
func (a *AuditLogger) RunStart(runID, root string, pending int) {
	a.Log(AuditEvent{
		EventType: AuditRunStart,
		RunID:     runID,
		Path:      root,
		Success:   true,
		Fields:    map[string]interface{}{"pending": pending},
		Message:   fmt.Sprintf("Run started: %s (%d files pending)", runID, pending),
	})
}

// RunComplete logs the end of a generation run.
func (a *AuditLogger) RunComplete(runID string, created, skipped int, durationMs int64, success bool, errMsg string) {
	eventType := AuditRunComplete
	if !success {
		eventType = AuditRunAbort
	}
	a.Log(AuditEvent{
		EventType:  eventType,
		RunID:      runID,
		Success:    success,
		DurationMs: durationMs,
		Error:      errMsg,
		Fields:     map[string]interface{}{"created": created, "skipped": skipped},
		Message:    fmt.Sprintf("Run %s: created=%d skipped=%d (%dms, success=%v)", runID, created, skipped, durationMs, success),
	})
}

// FileOp logs a workspace file operation.
func (a *AuditLogger) FileOp(op AuditEventType, path, topic, level string, size int64, errMsg string) {
	a.Log(AuditEvent{
		EventType: op,
		Path:      path,
		Topic:     topic,
		Level:     level,
		Success:   op != AuditFileError,
		Error:     errMsg,
		Fields:    map[string]interface{}{"size": size},
		Message:   fmt.Sprintf("File %s: %s (%d bytes)", op, path, size),
	})
}

// Scan logs a coverage scan result.
func (a *AuditLogger) Scan(root string, found, expected int, durationMs int64) {
	a.Log(AuditEvent{
		EventType:  AuditScan,
		Path:       root,
		Success:    true,
		DurationMs: durationMs,
		Fields:     map[string]interface{}{"found": found, "expected": expected},
		Message:    fmt.Sprintf("Scan: %d/%d theory files (%dms)", found, expected, durationMs),
	})
}

// Drift logs a detected divergence between manifest and workspace.
func (a *AuditLogger) Drift(path, kind string) {
	a.Log(AuditEvent{
		EventType: AuditDriftDetected,
		Path:      path,
		Success:   false,
		Fields:    map[string]interface{}{"kind": kind},
		Message:   fmt.Sprintf("Drift: %s (%s)", path, kind),
	})
}

// VerifyResult logs a verification outcome for one file.
func (a *AuditLogger) VerifyResult(path string, passed bool, detail string) {
	eventType := AuditVerifyPass
	if !passed {
		eventType = AuditVerifyFail
	}
	a.Log(AuditEvent{
		EventType: eventType,
		Path:      path,
		Success:   passed,
		Error:     detail,
		Message:   fmt.Sprintf("Verify %s: %s", path, eventType),
	})
}

// WatchEvent logs a filesystem event seen by the watcher.
func (a *AuditLogger) WatchEvent(path, op string) {
	a.Log(AuditEvent{
		EventType: AuditWatchEvent,
		Path:      path,
		Success:   true,
		Fields:    map[string]interface{}{"op": op},
		Message:   fmt.Sprintf("Watch: %s %s", op, path),
	})
}

// PerfMetric logs a timed operation, flagging it when over threshold.
func (a *AuditLogger) PerfMetric(operation string, durationMs int64, threshold int64) {
	eventType := AuditPerfMetric
	success := true
	if threshold > 0 && durationMs > threshold {
		eventType = AuditPerfSlow
		success = false
	}
	fields := map[string]interface{}{}
	if threshold > 0 {
		fields["threshold_ms"] = threshold
	}
	a.Log(AuditEvent{
		EventType:  eventType,
		DurationMs: durationMs,
		Success:    success,
		Fields:     fields,
		Message:    fmt.Sprintf("Perf: %s took %dms (threshold=%dms)", operation, durationMs, threshold),
	})
}

// Error logs an error event.
func (a *AuditLogger) Error(category string, err error, critical bool) {
	eventType := AuditErrorGeneric
	if critical {
		eventType = AuditErrorCritical
	}
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	a.Log(AuditEvent{
		EventType: eventType,
		Category:  category,
		Success:   false,
		Error:     errMsg,
		Message:   fmt.Sprintf("Error in %s: %s (critical=%v)", category, errMsg, critical),
	})
}
