package match

import (
	"time"

	"github.com/msto63/roboarena/internal/arena"
)

// Reason explains why a match ended
type Reason string

const (
	ReasonOutOfFuel    Reason = "out_of_fuel"
	ReasonMaxTicks     Reason = "max_ticks"
	ReasonProgramError Reason = "program_error"
	ReasonCancelled    Reason = "cancelled"
)

// Result is the outcome of a finished match
type Result struct {
	ID         string
	Scenario   string
	StartedAt  time.Time
	FinishedAt time.Time
	Ticks      int
	Winner     string // empty on a draw
	Reason     Reason
	Robots     []arena.RobotState
	Programs   []string // canonical renderings
	Err        error    // program failure for ReasonProgramError
}

// Draw reports whether nobody won
func (r *Result) Draw() bool {
	return r.Winner == ""
}

// Frame is handed to the observer after every tick
type Frame struct {
	MatchID  string
	Tick     int
	Snapshot arena.Snapshot
	Actions  []string // "robot action" for every action performed this tick
}

// Observer receives a frame after each tick. It runs on the driver
// goroutine and delays the next tick while it runs.
type Observer func(Frame)
