// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes for classifying failures across the
//              language core, the arena driver and the command line tools.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: RCL codes replace the command language codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Robot control language
	CodeRCLSyntax       Code = "RCL_SYNTAX"
	CodeRCLExecution    Code = "RCL_EXECUTION"
	CodeDivisionByZero  Code = "RCL_DIVISION_BY_ZERO"
	CodeRCLHalted       Code = "RCL_HALTED"
	CodeInvalidScenario Code = "INVALID_SCENARIO"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeRCLSyntax, CodeRCLExecution, CodeDivisionByZero, CodeRCLHalted:
		return "rcl"
	case CodeInvalidScenario:
		return "arena"
	case CodeDatabaseError:
		return "database"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
