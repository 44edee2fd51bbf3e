package repl

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl"
	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/internal/arena"
)

// Options configures a sandbox session
type Options struct {
	Scenario   *arena.Scenario
	Engine     *rcl.Engine
	Logger     *mdwlog.Logger
	MaxActions int           // actions per input before the program is halted (default: 1000)
	Timeout    time.Duration // wall-clock limit per input (default: 2s)
}

// Session executes statements against the first robot of a sandbox arena.
// The opponent never moves.
type Session struct {
	opts   Options
	engine *rcl.Engine
	arena  *arena.Arena
	robot  *arena.Robot
}

// NewSession creates a sandbox session
func NewSession(opts Options) (*Session, error) {
	if opts.MaxActions <= 0 {
		opts.MaxActions = 1000
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	if opts.Engine == nil {
		engine, err := rcl.NewEngine(rcl.Options{Logger: opts.Logger})
		if err != nil {
			return nil, err
		}
		opts.Engine = engine
	}

	s := &Session{opts: opts, engine: opts.Engine}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the sandbox arena from the scenario
func (s *Session) Reset() error {
	a, err := arena.New(s.opts.Scenario, s.opts.Logger)
	if err != nil {
		return err
	}
	s.arena = a
	s.robot = a.Robot(0)
	return nil
}

// Outcome reports what one input did
type Outcome struct {
	Program *ast.Program
	Actions []string
	Halted  bool
}

// Eval parses src and runs it once. Programs that exceed the action or time
// limit are halted and reported with Halted set.
func (s *Session) Eval(ctx context.Context, src string) (*Outcome, error) {
	prog, err := s.engine.Parse(src)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	lr := &limitRobot{Robot: s.robot, arena: s.arena, limit: s.opts.MaxActions, cancel: cancel}
	out := &Outcome{Program: prog}
	err = s.engine.Execute(ctx, prog, lr)
	out.Actions = lr.log
	if mdwerror.HasCode(err, mdwerror.CodeRCLHalted) {
		out.Halted = true
		return out, nil
	}
	return out, err
}

// Snapshot returns the sandbox state
func (s *Session) Snapshot() arena.Snapshot {
	return s.arena.Snapshot()
}

// Sensors reads every sensor of the sandbox robot
func (s *Session) Sensors() map[string]int {
	values := make(map[string]int)
	for _, kind := range ast.SensorKinds() {
		v, _ := (&ast.Sensor{Kind: kind}).Evaluate(s.robot)
		values[kind.String()] = v
	}
	return values
}

// PrintState writes a one-line summary per robot
func (s *Session) PrintState(out io.Writer) {
	snap := s.arena.Snapshot()
	for _, r := range snap.Robots {
		shield := "off"
		if r.Shield {
			shield = "on"
		}
		fmt.Fprintf(out, "%-6s (%d,%d) facing %-5s fuel %-4d shield %s\n",
			r.Name, r.Pos.X, r.Pos.Y, r.Heading, r.Fuel, shield)
	}
	fmt.Fprintf(out, "tick %d, %d barrel(s)\n", snap.Tick, len(snap.Barrels))
}

// PrintSensors writes all sensor readings sorted by name
func (s *Session) PrintSensors(out io.Writer) {
	values := s.Sensors()
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(out, "  %-10s %d\n", n, values[n])
	}
}

// limitRobot advances the sandbox one tick per action and halts the
// program once the action limit is reached.
type limitRobot struct {
	*arena.Robot
	arena  *arena.Arena
	limit  int
	cancel context.CancelFunc
	log    []string
}

func (r *limitRobot) act(name string, fn func()) {
	if len(r.log) >= r.limit {
		r.cancel()
		return
	}
	fn()
	r.arena.EndTick()
	r.log = append(r.log, name)
}

func (r *limitRobot) Move()       { r.act("move", r.Robot.Move) }
func (r *limitRobot) TurnLeft()   { r.act("turnL", r.Robot.TurnLeft) }
func (r *limitRobot) TurnRight()  { r.act("turnR", r.Robot.TurnRight) }
func (r *limitRobot) TakeFuel()   { r.act("takeFuel", r.Robot.TakeFuel) }
func (r *limitRobot) IdleWait()   { r.act("wait", r.Robot.IdleWait) }
func (r *limitRobot) TurnAround() { r.act("turnAround", r.Robot.TurnAround) }

func (r *limitRobot) SetShield(on bool) {
	name := "shieldOff"
	if on {
		name = "shieldOn"
	}
	r.act(name, func() { r.Robot.SetShield(on) })
}

// summarize collapses repeated actions: move, move, turnL -> move x2, turnL
func summarize(actions []string) string {
	if len(actions) == 0 {
		return "no actions"
	}
	var parts []string
	for i := 0; i < len(actions); {
		j := i
		for j < len(actions) && actions[j] == actions[i] {
			j++
		}
		if n := j - i; n > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", actions[i], n))
		} else {
			parts = append(parts, actions[i])
		}
		i = j
	}
	return strings.Join(parts, ", ")
}
