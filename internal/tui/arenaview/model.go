// ============================================================================
// roboarena - Robot Control Language Arena
// ============================================================================
//
// Package:     arenaview
// Description: Bubbletea model rendering a running match
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package arenaview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/internal/arena"
	"github.com/msto63/roboarena/internal/match"
)

// Cell symbols used by Grid
const (
	CellEmpty  = "."
	CellBarrel = "o"
)

// Config holds viewer configuration
type Config struct {
	// MaxEvents bounds the event log (default: 500)
	MaxEvents int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{MaxEvents: 500}
}

// Model is the Bubbletea model for the arena viewer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	autoScroll bool
	frame      match.Frame
	hasFrame   bool
	result     *match.Result
	err        error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	events    []string
	maxEvents int
	names     []string
	matchID   string
	stop      context.CancelFunc
}

// New creates a viewer model for the given robots. stop is called when the
// user quits before the match has finished.
func New(cfg Config, matchID string, names []string, stop context.CancelFunc) Model {
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = DefaultConfig().MaxEvents
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner:    sp,
		autoScroll: true,
		maxEvents:  cfg.MaxEvents,
		names:      names,
		matchID:    matchID,
		stop:       stop,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 3
		viewportHeight := msg.Height - headerHeight - footerHeight - m.gridHeight() - 4
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.result == nil {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case frameMsg:
		m.frame = match.Frame(msg)
		m.hasFrame = true
		m.addEvent(fmt.Sprintf("%s %s", TickStyle.Render(fmt.Sprintf("[%4d]", msg.Tick)),
			EventStyle.Render(strings.Join(msg.Actions, ", "))))

	case finishedMsg:
		m.result = msg.result
		m.err = msg.err
		if msg.result != nil {
			m.frame.Snapshot.Robots = msg.result.Robots
			m.addEvent(StatusDoneStyle.Render(Outcome(msg.result)))
		}
		if msg.err != nil {
			m.addEvent(StatusErrorStyle.Render(msg.err.Error()))
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.quit()

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m.quit()
		case "a":
			m.autoScroll = !m.autoScroll
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
		case "g":
			m.viewport.GotoTop()
			m.autoScroll = false
		case "G":
			m.viewport.GotoBottom()
			m.autoScroll = true
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		m.autoScroll = false

	case tea.KeyPgDown:
		m.viewport.ViewDown()

	case tea.KeyUp:
		m.viewport.LineUp(1)
		m.autoScroll = false

	case tea.KeyDown:
		m.viewport.LineDown(1)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.result == nil && m.stop != nil {
		m.stop()
	}
	return m, tea.Quit
}

func (m *Model) addEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > m.maxEvents {
		m.events = m.events[len(m.events)-m.maxEvents:]
	}
	m.updateViewportContent()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.events, "\n"))
	if m.autoScroll {
		m.viewport.GotoBottom()
	}
}

func (m Model) gridHeight() int {
	if !m.hasFrame {
		return 0
	}
	return m.frame.Snapshot.Height + 2
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading arena..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.hasFrame {
		grid := GridPanelStyle.Render(m.renderGrid())
		side := SidePanelStyle.Render(m.renderRobots())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", side))
		b.WriteString("\n")
	}

	b.WriteString(EventPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	var status string
	switch {
	case m.err != nil:
		status = StatusErrorStyle.Render("failed")
	case m.result != nil:
		status = StatusDoneStyle.Render(Outcome(m.result))
	default:
		status = m.spinner.View() + StatusRunningStyle.Render(fmt.Sprintf(" tick %d", m.frame.Tick))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render(shortID(m.matchID)),
		strings.Repeat(" ", 3),
		status,
	)
	width := m.width - 4
	if width < 0 {
		width = 0
	}
	return TitlePanelStyle.Width(width).Render(header)
}

func (m Model) renderGrid() string {
	rows := Grid(m.frame.Snapshot)
	robotAt := make(map[arena.Point]int)
	for i, r := range m.frame.Snapshot.Robots {
		robotAt[r.Pos] = i
	}

	var b strings.Builder
	for y, row := range rows {
		for x, cell := range row {
			s := string(cell)
			switch {
			case s == CellEmpty:
				b.WriteString(EmptyCellStyle.Render(s))
			case s == CellBarrel:
				b.WriteString(BarrelStyle.Render(s))
			default:
				b.WriteString(RobotStyle(robotAt[arena.Point{X: x, Y: y}]).Render(s))
			}
			b.WriteString(" ")
		}
		if y < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderRobots() string {
	var lines []string
	for i, r := range m.frame.Snapshot.Robots {
		shield := ""
		if r.Shield {
			shield = " [shield]"
		}
		lines = append(lines,
			RobotStyle(i).Render(fmt.Sprintf("%s %s", r.Heading.Arrow(), r.Name))+shield,
			HelpDescStyle.Render(fmt.Sprintf("  fuel %d  pos %d,%d", r.Fuel, r.Pos.X, r.Pos.Y)),
			HelpDescStyle.Render(fmt.Sprintf("  barrels %d  rams %d", r.Collected, r.Rams)),
		)
	}
	lines = append(lines, "", HelpDescStyle.Render(fmt.Sprintf("barrels on field: %d", len(m.frame.Snapshot.Barrels))))
	return strings.Join(lines, "\n")
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("a", "AutoScroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return strings.Join(items, "  ")
}

// Grid renders the arena as rows of single-character cells: robots by
// their heading arrow, barrels and empty cells by CellBarrel and CellEmpty.
func Grid(snap arena.Snapshot) []string {
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil
	}
	cells := make([][]string, snap.Height)
	for y := range cells {
		cells[y] = make([]string, snap.Width)
		for x := range cells[y] {
			cells[y][x] = CellEmpty
		}
	}
	put := func(p arena.Point, s string) {
		if p.X >= 0 && p.X < snap.Width && p.Y >= 0 && p.Y < snap.Height {
			cells[p.Y][p.X] = s
		}
	}
	for _, b := range snap.Barrels {
		put(b.Pos, CellBarrel)
	}
	for _, r := range snap.Robots {
		put(r.Pos, r.Heading.Arrow())
	}

	rows := make([]string, snap.Height)
	for y := range cells {
		rows[y] = strings.Join(cells[y], "")
	}
	return rows
}

// Outcome describes a finished match in one line
func Outcome(res *match.Result) string {
	if res.Draw() {
		return fmt.Sprintf("draw after %d ticks (%s)", res.Ticks, res.Reason)
	}
	return fmt.Sprintf("%s wins after %d ticks (%s)", res.Winner, res.Ticks, res.Reason)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run plays a match inside the viewer and returns its result once the
// match has finished and the user has left the viewer.
func Run(ctx context.Context, a *arena.Arena, programs []*ast.Program, opts match.Options, cfg Config) (*match.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	opts.Observer = func(f match.Frame) {
		p.Send(frameMsg(f))
	}
	mt, err := match.New(a, programs, opts)
	if err != nil {
		return nil, err
	}

	p = tea.NewProgram(New(cfg, mt.ID(), a.Names(), cancel), tea.WithAltScreen(), tea.WithContext(ctx))

	type outcome struct {
		res *match.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := mt.Run(ctx)
		done <- outcome{res, err}
		p.Send(finishedMsg{result: res, err: err})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		cancel()
		<-done
		return nil, err
	}
	cancel()
	out := <-done
	return out.res, out.err
}
