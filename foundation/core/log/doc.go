// Package log provides structured logging for the roboarena foundation.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, field-based logging with JSON and text output. Loggers are
//              immutable: every With* call returns a configured clone, so a parser,
//              an engine and each robot of a match can carry their own context
//              fields without affecting one another.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Match and robot context, trimmed formatter set
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithField("component", "rcl-parser")
//
//	logger.Info("program parsed", log.Fields{"statements": 4})
//
//	timer := logger.StartTimer("match")
//	// ... play the match
//	timer.Stop()
package log
