// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick log levels and exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Code mapping for RCL codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers rejected user input such as a malformed program
	SeverityLow Severity = iota

	// SeverityMedium covers failures of a single run, e.g. a program dividing by zero
	SeverityMedium

	// SeverityHigh covers infrastructure failures such as an unusable database
	SeverityHigh

	// SeverityCritical makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeRCLExecution, CodeDivisionByZero, CodeRCLHalted, CodeTimeout:
		return SeverityMedium
	case CodeRCLSyntax, CodeInvalidInput, CodeNotFound, CodeInvalidScenario:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
