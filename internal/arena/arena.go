package arena

import (
	"math/rand"
	"sync"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
)

// Barrel is a fuel pickup on the board
type Barrel struct {
	Pos  Point `yaml:"pos"`
	Fuel int   `yaml:"fuel"`
}

// RobotState is the externally visible state of one robot
type RobotState struct {
	Name      string
	Pos       Point
	Heading   Heading
	Fuel      int
	Shield    bool
	Collected int // barrels picked up
	Actions   int // primitive actions performed
	Rams      int // times this robot rammed the opponent
}

// Snapshot is a consistent copy of the arena between ticks
type Snapshot struct {
	Tick    int
	Width   int
	Height  int
	Robots  []RobotState
	Barrels []Barrel
}

// Arena is the simulated world. All methods are safe for concurrent use.
type Arena struct {
	mu       sync.Mutex
	scenario *Scenario
	robots   []*RobotState
	barrels  []Barrel
	rng      *rand.Rand
	tick     int
	logger   *mdwlog.Logger
}

// New builds an arena from a scenario
func New(sc *Scenario, logger *mdwlog.Logger) (*Arena, error) {
	if sc == nil {
		sc = DefaultScenario()
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	a := &Arena{
		scenario: sc,
		rng:      rand.New(rand.NewSource(sc.Seed)),
		logger:   logger.WithField("component", "arena"),
	}
	for _, rc := range sc.Robots {
		a.robots = append(a.robots, &RobotState{
			Name:    rc.Name,
			Pos:     rc.Start,
			Heading: rc.Heading,
			Fuel:    sc.StartFuel,
		})
	}
	for _, p := range sc.Placed {
		if a.free(p) {
			a.barrels = append(a.barrels, Barrel{Pos: p, Fuel: sc.BarrelFuel})
		}
	}
	for len(a.barrels) < sc.Barrels {
		a.spawnBarrel()
	}
	return a, nil
}

// Scenario returns the scenario the arena was built from
func (a *Arena) Scenario() *Scenario {
	return a.scenario
}

// Robot returns the handle for robot i (0 or 1)
func (a *Arena) Robot(i int) *Robot {
	return &Robot{arena: a, self: i}
}

// Names returns the robot names in order
func (a *Arena) Names() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, len(a.robots))
	for i, r := range a.robots {
		names[i] = r.Name
	}
	return names
}

// EndTick drains shields and advances the tick counter
func (a *Arena) EndTick() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, r := range a.robots {
		if r.Shield {
			r.Fuel--
			if r.Fuel <= 0 {
				r.Fuel = 0
				r.Shield = false
			}
		}
	}
	a.tick++
}

// OutOfFuel returns the indices of robots without fuel
func (a *Arena) OutOfFuel() []int {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []int
	for i, r := range a.robots {
		if r.Fuel <= 0 {
			out = append(out, i)
		}
	}
	return out
}

// Snapshot copies the current state
func (a *Arena) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := Snapshot{
		Tick:    a.tick,
		Width:   a.scenario.Width,
		Height:  a.scenario.Height,
		Robots:  make([]RobotState, len(a.robots)),
		Barrels: append([]Barrel(nil), a.barrels...),
	}
	for i, r := range a.robots {
		snap.Robots[i] = *r
	}
	return snap
}

func (a *Arena) inside(p Point) bool {
	return a.scenario.inside(p)
}

// free reports whether no robot or barrel occupies p. Callers hold mu.
func (a *Arena) free(p Point) bool {
	if !a.inside(p) {
		return false
	}
	for _, r := range a.robots {
		if r.Pos == p {
			return false
		}
	}
	for _, b := range a.barrels {
		if b.Pos == p {
			return false
		}
	}
	return true
}

// spawnBarrel places a barrel on a random free cell. Callers hold mu.
func (a *Arena) spawnBarrel() {
	var cells []Point
	for y := 0; y < a.scenario.Height; y++ {
		for x := 0; x < a.scenario.Width; x++ {
			if p := (Point{X: x, Y: y}); a.free(p) {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return
	}
	p := cells[a.rng.Intn(len(cells))]
	a.barrels = append(a.barrels, Barrel{Pos: p, Fuel: a.scenario.BarrelFuel})
	a.logger.Trace("Barrel spawned", mdwlog.Fields{"x": p.X, "y": p.Y})
}

func (a *Arena) opponent(i int) *RobotState {
	return a.robots[1-i]
}

func (a *Arena) move(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.robots[i]
	r.Actions++
	if r.Fuel <= 0 {
		return
	}
	r.Fuel--

	next := r.Pos.add(r.Heading.delta())
	if !a.inside(next) {
		return
	}
	opp := a.opponent(i)
	if opp.Pos == next {
		r.Rams++
		if !opp.Shield {
			opp.Fuel -= a.scenario.RamDamage
			if opp.Fuel < 0 {
				opp.Fuel = 0
			}
		}
		return
	}
	r.Pos = next
}

func (a *Arena) turn(i int, h func(Heading) Heading) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.robots[i]
	r.Actions++
	r.Heading = h(r.Heading)
}

func (a *Arena) takeFuel(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.robots[i]
	r.Actions++
	for j, b := range a.barrels {
		if b.Pos != r.Pos {
			continue
		}
		r.Fuel += b.Fuel
		r.Collected++
		a.barrels = append(a.barrels[:j], a.barrels[j+1:]...)
		a.spawnBarrel()
		return
	}
}

func (a *Arena) idle(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.robots[i].Actions++
}

func (a *Arena) setShield(i int, on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.robots[i]
	r.Actions++
	r.Shield = on && r.Fuel > 0
}

// read runs fn under the arena lock
func (a *Arena) read(fn func() int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn()
}

// nearestBarrel returns the barrel closest to p, ties broken by order.
// Callers hold mu.
func (a *Arena) nearestBarrel(p Point) (Barrel, bool) {
	best, found := Barrel{}, false
	for _, b := range a.barrels {
		if !found || b.Pos.manhattan(p) < best.Pos.manhattan(p) {
			best, found = b, true
		}
	}
	return best, found
}
