// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation (a parse, a match) and logs
//              it on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Duration recorded on the entry instead of as fields

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second call is a no-op.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError stops the timer and logs the failure with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration"] = elapsed.String()

	if err != nil {
		t.logger.log(LevelWarn, t.operation+" failed", err, fields)
		return elapsed
	}
	t.logger.log(t.level, t.operation+" completed", nil, fields)
	return elapsed
}
