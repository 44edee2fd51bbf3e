// ============================================================================
// roboarena - Robot Control Language Arena
// ============================================================================
//
// Package:     arenaview
// Description: Message types for the arena viewer
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package arenaview

import (
	"github.com/msto63/roboarena/internal/match"
)

// frameMsg carries the state after a completed tick
type frameMsg match.Frame

// finishedMsg is sent once the match has ended
type finishedMsg struct {
	result *match.Result
	err    error
}
