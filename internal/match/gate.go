package match

import (
	"context"

	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/internal/arena"
)

// gate wraps an arena robot so that every primitive action waits for the
// driver to grant the robot its turn. Sensor reads pass straight through.
type gate struct {
	*arena.Robot

	ctx     context.Context
	grant   chan struct{}
	done    chan string
	actions int
}

var _ ast.Robot = (*gate)(nil)

func newGate(ctx context.Context, r *arena.Robot) *gate {
	return &gate{
		Robot: r,
		ctx:   ctx,
		grant: make(chan struct{}),
		done:  make(chan string),
	}
}

// act blocks until the driver grants a turn, performs fn and reports the
// action name back. A cancelled context turns the action into a no-op.
func (g *gate) act(name string, fn func()) {
	select {
	case <-g.grant:
	case <-g.ctx.Done():
		return
	}

	fn()
	g.actions++

	select {
	case g.done <- name:
	case <-g.ctx.Done():
	}
}

func (g *gate) Move()       { g.act("move", g.Robot.Move) }
func (g *gate) TurnLeft()   { g.act("turnL", g.Robot.TurnLeft) }
func (g *gate) TurnRight()  { g.act("turnR", g.Robot.TurnRight) }
func (g *gate) TakeFuel()   { g.act("takeFuel", g.Robot.TakeFuel) }
func (g *gate) IdleWait()   { g.act("wait", g.Robot.IdleWait) }
func (g *gate) TurnAround() { g.act("turnAround", g.Robot.TurnAround) }

func (g *gate) SetShield(on bool) {
	name := "shieldOff"
	if on {
		name = "shieldOn"
	}
	g.act(name, func() { g.Robot.SetShield(on) })
}
