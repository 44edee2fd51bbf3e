// ============================================================================
// roboarena - Robot Control Language Arena
// ============================================================================
//
// Package:     arenaview
// Description: Styles for the arena viewer TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package arenaview

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// One color per robot, in arena order
	RobotColors = []lipgloss.Color{
		lipgloss.Color("#EF4444"), // Red
		lipgloss.Color("#3B82F6"), // Blue
	}
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	GridPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	SidePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	EventPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDimmed)

	EmptyCellStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	BarrelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TickStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	EventStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo is shown in the header
const Logo = "RoboArena"

// RobotStyle returns the style for robot i
func RobotStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(RobotColors[i%len(RobotColors)]).
		Bold(true)
}

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
