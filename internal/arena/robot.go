package arena

import "github.com/msto63/roboarena/foundation/rcl/ast"

// Robot is the program-facing handle of one robot in an arena.
// It implements ast.Robot directly against the arena state.
type Robot struct {
	arena *Arena
	self  int
}

var _ ast.Robot = (*Robot)(nil)

// Index returns the robot's position in the scenario
func (r *Robot) Index() int { return r.self }

// Name returns the robot's name
func (r *Robot) Name() string {
	return r.arena.Names()[r.self]
}

func (r *Robot) Move()       { r.arena.move(r.self) }
func (r *Robot) TurnLeft()   { r.arena.turn(r.self, Heading.Left) }
func (r *Robot) TurnRight()  { r.arena.turn(r.self, Heading.Right) }
func (r *Robot) TurnAround() { r.arena.turn(r.self, Heading.Back) }
func (r *Robot) TakeFuel()   { r.arena.takeFuel(r.self) }
func (r *Robot) IdleWait()   { r.arena.idle(r.self) }

func (r *Robot) SetShield(on bool) { r.arena.setShield(r.self, on) }

func (r *Robot) Fuel() int {
	return r.arena.read(func() int { return r.me().Fuel })
}

func (r *Robot) OpponentLR() int {
	return r.arena.read(func() int {
		lr, _ := relative(r.me().Heading, r.me().Pos, r.arena.opponent(r.self).Pos)
		return lr
	})
}

func (r *Robot) OpponentFB() int {
	return r.arena.read(func() int {
		_, fb := relative(r.me().Heading, r.me().Pos, r.arena.opponent(r.self).Pos)
		return fb
	})
}

func (r *Robot) NumBarrels() int {
	return r.arena.read(func() int { return len(r.arena.barrels) })
}

// ClosestBarrelLR is 0 when no barrel is on the board
func (r *Robot) ClosestBarrelLR() int {
	return r.arena.read(func() int {
		b, ok := r.arena.nearestBarrel(r.me().Pos)
		if !ok {
			return 0
		}
		lr, _ := relative(r.me().Heading, r.me().Pos, b.Pos)
		return lr
	})
}

// ClosestBarrelFB is 0 when no barrel is on the board
func (r *Robot) ClosestBarrelFB() int {
	return r.arena.read(func() int {
		b, ok := r.arena.nearestBarrel(r.me().Pos)
		if !ok {
			return 0
		}
		_, fb := relative(r.me().Heading, r.me().Pos, b.Pos)
		return fb
	})
}

// WallDistance counts the free cells between the robot and the wall ahead
func (r *Robot) WallDistance() int {
	return r.arena.read(func() int {
		me := r.me()
		switch me.Heading {
		case North:
			return me.Pos.Y
		case East:
			return r.arena.scenario.Width - 1 - me.Pos.X
		case South:
			return r.arena.scenario.Height - 1 - me.Pos.Y
		default:
			return me.Pos.X
		}
	})
}

// me returns the robot's state. Callers hold the arena lock.
func (r *Robot) me() *RobotState {
	return r.arena.robots[r.self]
}
