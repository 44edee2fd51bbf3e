// ============================================================================
// roboarena - Robot Control Language Arena
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and language
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	Platform = "0.3.0"

	// Language version of the accepted RCL grammar
	Language = "1.0.0"

	// Store schema version
	Schema = "1.0.0"
)

// Component returns the version for a given component name
func Component(name string) string {
	switch name {
	case "rcl", "language":
		return Language
	case "store", "schema":
		return Schema
	default:
		return Platform
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("roboarena %s (rcl %s, %s/%s, %s)",
		Platform, Language, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
