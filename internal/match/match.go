package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl"
	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/internal/arena"
)

// Options configures a match
type Options struct {
	// MaxTicks ends the match after this many ticks (default: 500)
	MaxTicks int

	// TickDelay pauses between ticks; zero runs as fast as possible
	TickDelay time.Duration

	// ActionTimeout is how long the driver waits for a robot to request
	// its action before the robot loses the turn (default: 50ms)
	ActionTimeout time.Duration

	// Logger for match events (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// Observer is called after every tick (optional)
	Observer Observer
}

// Match runs two programs against each other in one arena. A Match is
// single use.
type Match struct {
	id       string
	arena    *arena.Arena
	programs []*ast.Program
	opts     Options
	logger   *mdwlog.Logger
}

// New prepares a match. programs[i] controls robot i of the arena.
func New(a *arena.Arena, programs []*ast.Program, opts Options) (*Match, error) {
	if a == nil {
		return nil, mdwerror.New("arena is nil").WithCode(mdwerror.CodeInvalidInput)
	}
	if len(programs) != len(a.Names()) {
		return nil, mdwerror.Newf("need %d programs, got %d", len(a.Names()), len(programs)).
			WithCode(mdwerror.CodeInvalidInput)
	}
	for i, p := range programs {
		if p == nil {
			return nil, mdwerror.Newf("program %d is nil", i).WithCode(mdwerror.CodeInvalidInput)
		}
	}

	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 500
	}
	if opts.ActionTimeout <= 0 {
		opts.ActionTimeout = 50 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	id := uuid.New().String()
	return &Match{
		id:       id,
		arena:    a,
		programs: programs,
		opts:     opts,
		logger:   opts.Logger.WithField("component", "match").WithMatchID(id),
	}, nil
}

// ID returns the match identifier
func (m *Match) ID() string {
	return m.id
}

// Run plays the match until a robot runs out of fuel, a program fails, the
// tick limit is reached or ctx is cancelled.
func (m *Match) Run(ctx context.Context) (*Result, error) {
	names := m.arena.Names()
	res := &Result{
		ID:        m.id,
		Scenario:  m.arena.Scenario().Name,
		StartedAt: time.Now(),
	}
	for _, p := range m.programs {
		res.Programs = append(res.Programs, p.String())
	}

	m.logger.Info("Match started", mdwlog.Fields{
		"scenario": res.Scenario,
		"robots":   names,
		"maxTicks": m.opts.MaxTicks,
	})
	timer := m.logger.StartTimer("match").WithLevel(mdwlog.LevelInfo)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	gates := make([]*gate, len(names))
	for i := range names {
		gates[i] = newGate(gctx, m.arena.Robot(i))
	}
	for i := range gates {
		i := i
		g.Go(func() error {
			return m.runRobot(gctx, names[i], m.programs[i], gates[i])
		})
	}

	res.Ticks, res.Reason = m.drive(gctx, gates, names)
	cancel()
	robotErr := g.Wait()

	snap := m.arena.Snapshot()
	res.Robots = snap.Robots
	res.FinishedAt = time.Now()

	switch {
	case robotErr != nil:
		res.Reason = ReasonProgramError
		res.Err = robotErr
		res.Winner = m.survivor(robotErr, names)
	case ctx.Err() != nil:
		res.Reason = ReasonCancelled
	case res.Reason == ReasonOutOfFuel:
		res.Winner = fuelWinner(snap.Robots, true)
	default:
		res.Reason = ReasonMaxTicks
		res.Winner = fuelWinner(snap.Robots, false)
	}

	timer.WithField("ticks", res.Ticks).
		WithField("reason", string(res.Reason)).
		WithField("winner", res.Winner)
	if res.Err != nil {
		timer.StopWithError(res.Err)
	} else {
		timer.Stop()
	}
	return res, nil
}

// drive grants turns tick by tick and returns the number of completed
// ticks and the reason it stopped. Robots alternate who acts first.
func (m *Match) drive(ctx context.Context, gates []*gate, names []string) (int, Reason) {
	for tick := 1; tick <= m.opts.MaxTicks; tick++ {
		var actions []string
		for k := range gates {
			i := (k + tick - 1) % len(gates)
			if action, ok := m.turn(ctx, gates[i]); ok {
				actions = append(actions, names[i]+" "+action)
			}
			if ctx.Err() != nil {
				return tick - 1, ReasonCancelled
			}
		}
		m.arena.EndTick()

		m.logger.Trace("Tick completed", mdwlog.Fields{"tick": tick, "actions": actions})
		if m.opts.Observer != nil {
			m.opts.Observer(Frame{
				MatchID:  m.id,
				Tick:     tick,
				Snapshot: m.arena.Snapshot(),
				Actions:  actions,
			})
		}

		if len(m.arena.OutOfFuel()) > 0 {
			return tick, ReasonOutOfFuel
		}

		if m.opts.TickDelay > 0 {
			select {
			case <-time.After(m.opts.TickDelay):
			case <-ctx.Done():
				return tick, ReasonCancelled
			}
		}
	}
	return m.opts.MaxTicks, ReasonMaxTicks
}

// turn offers one action to a robot. A robot that does not ask for its
// action within ActionTimeout skips the tick.
func (m *Match) turn(ctx context.Context, g *gate) (string, bool) {
	timer := time.NewTimer(m.opts.ActionTimeout)
	defer timer.Stop()

	select {
	case g.grant <- struct{}{}:
	case <-timer.C:
		return "", false
	case <-ctx.Done():
		return "", false
	}

	select {
	case action := <-g.done:
		return action, true
	case <-ctx.Done():
		return "", false
	}
}

// runRobot executes the program repeatedly until the match ends. A pass
// that performs no action idles for one tick so the driver keeps moving.
func (m *Match) runRobot(ctx context.Context, name string, prog *ast.Program, g *gate) error {
	logger := m.logger.WithRobot(name)
	for pass := 1; ; pass++ {
		if ctx.Err() != nil {
			return nil
		}

		before := g.actions
		if err := prog.Execute(ctx, g); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			err = rcl.TranslateExecError(err)
			logger.WarnWithErr("Program failed", err, mdwlog.Fields{"pass": pass})
			return &RobotError{Robot: name, Err: err}
		}
		if g.actions == before {
			g.IdleWait()
		}
		logger.Trace("Program restarted", mdwlog.Fields{"pass": pass})
	}
}

// RobotError reports which robot's program failed
type RobotError struct {
	Robot string
	Err   error
}

func (e *RobotError) Error() string {
	return fmt.Sprintf("robot %s: %v", e.Robot, e.Err)
}

func (e *RobotError) Unwrap() error {
	return e.Err
}

func (m *Match) survivor(err error, names []string) string {
	re, ok := err.(*RobotError)
	if !ok {
		return ""
	}
	for _, n := range names {
		if n != re.Robot {
			return n
		}
	}
	return ""
}

// fuelWinner picks the robot with fuel left (emptyOnly) or the most fuel.
// Equal standing is a draw.
func fuelWinner(robots []arena.RobotState, emptyOnly bool) string {
	if len(robots) != 2 {
		return ""
	}
	a, b := robots[0], robots[1]
	if emptyOnly {
		switch {
		case a.Fuel <= 0 && b.Fuel > 0:
			return b.Name
		case b.Fuel <= 0 && a.Fuel > 0:
			return a.Name
		}
		return ""
	}
	switch {
	case a.Fuel > b.Fuel:
		return a.Name
	case b.Fuel > a.Fuel:
		return b.Name
	}
	return ""
}
