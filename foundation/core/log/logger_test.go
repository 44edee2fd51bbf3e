// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context cloning, level filtering
//              and formatter output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Match/robot context tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output misses warn message: %q", out)
	}
}

func TestLoggerJSONContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, Name: "match"}).
		WithMatchID("m-1").
		WithRobot("red").
		WithField("component", "driver")

	logger.Info("tick", Fields{"tick": 3})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"logger":    "match",
		"match_id":  "m-1",
		"robot":     "red",
		"component": "driver",
		"message":   "tick",
		"level":     "info",
		"tick":      float64(3),
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("field %s = %v, want %v", k, data[k], v)
		}
	}
}

func TestLoggerWithFieldIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf})
	_ = base.WithField("robot_only", true)

	base.Info("plain")
	if strings.Contains(buf.String(), "robot_only") {
		t.Error("WithField() leaked into the parent logger")
	}
}

func TestLoggerLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	err := mdwerror.New("division by zero").
		WithCode(mdwerror.CodeDivisionByZero).
		WithSeverity(mdwerror.SeverityMedium).
		WithDetail("expr", "div(1,0)")
	logger.LogError(err)

	out := buf.String()
	if !strings.Contains(out, "[WRN]") {
		t.Errorf("medium severity should log at warn: %q", out)
	}
	if !strings.Contains(out, "error_code=RCL_DIVISION_BY_ZERO") {
		t.Errorf("missing error code: %q", out)
	}
	if !strings.Contains(out, "error_expr=div(1,0)") {
		t.Errorf("missing error detail: %q", out)
	}

	buf.Reset()
	logger.LogError(errors.New("plain failure"))
	if !strings.Contains(buf.String(), "[ERR]") {
		t.Errorf("plain errors should log at error: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	timer := logger.StartTimer("parse").WithField("bytes", 12)
	if timer.Stop() < 0 {
		t.Error("Stop() returned a negative duration")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should be a no-op")
	}

	out := buf.String()
	if strings.Count(out, "parse completed") != 1 {
		t.Errorf("expected exactly one completion line, got %q", out)
	}
	if !strings.Contains(out, "bytes=12") {
		t.Errorf("timer fields missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("dropped")
}
