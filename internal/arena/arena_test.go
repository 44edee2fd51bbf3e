package arena

import (
	"testing"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
)

// openScenario has no barrels unless a test places them
func openScenario() *Scenario {
	sc := DefaultScenario()
	sc.Barrels = 0
	sc.Robots = []RobotConfig{
		{Name: "red", Start: Point{X: 2, Y: 2}, Heading: North},
		{Name: "blue", Start: Point{X: 5, Y: 4}, Heading: West},
	}
	return sc
}

func newArena(t *testing.T, sc *Scenario) *Arena {
	t.Helper()
	a, err := New(sc, mdwlog.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestHeadingTurns(t *testing.T) {
	tests := []struct {
		h                 Heading
		left, right, back Heading
	}{
		{North, West, East, South},
		{East, North, South, West},
		{South, East, West, North},
		{West, South, North, East},
	}
	for _, tt := range tests {
		if tt.h.Left() != tt.left || tt.h.Right() != tt.right || tt.h.Back() != tt.back {
			t.Errorf("%s: left=%s right=%s back=%s", tt.h, tt.h.Left(), tt.h.Right(), tt.h.Back())
		}
	}
}

func TestRelative(t *testing.T) {
	from := Point{X: 5, Y: 5}
	to := Point{X: 7, Y: 4} // two east, one north

	tests := []struct {
		h        Heading
		lat, fwd int
	}{
		{North, 2, 1},
		{East, -1, 2},
		{South, -2, -1},
		{West, 1, -2},
	}
	for _, tt := range tests {
		lat, fwd := relative(tt.h, from, to)
		if lat != tt.lat || fwd != tt.fwd {
			t.Errorf("%s: relative = (%d,%d), want (%d,%d)", tt.h, lat, fwd, tt.lat, tt.fwd)
		}
	}
}

func TestMoveAndWalls(t *testing.T) {
	a := newArena(t, openScenario())
	red := a.Robot(0)

	if got := red.WallDistance(); got != 2 {
		t.Fatalf("WallDistance() = %d, want 2", got)
	}
	red.Move()
	red.Move()
	red.Move() // blocked by the wall, still costs fuel

	snap := a.Snapshot()
	if snap.Robots[0].Pos != (Point{X: 2, Y: 0}) {
		t.Errorf("position = %v, want (2,0)", snap.Robots[0].Pos)
	}
	if snap.Robots[0].Fuel != 97 {
		t.Errorf("fuel = %d, want 97", snap.Robots[0].Fuel)
	}
	if red.WallDistance() != 0 {
		t.Errorf("WallDistance() at wall = %d", red.WallDistance())
	}

	red.TurnRight()
	if got := red.WallDistance(); got != 9 {
		t.Errorf("WallDistance() facing east = %d, want 9", got)
	}
	red.TurnAround()
	if got := red.WallDistance(); got != 2 {
		t.Errorf("WallDistance() facing west = %d, want 2", got)
	}
}

func TestOpponentSensors(t *testing.T) {
	a := newArena(t, openScenario())
	red, blue := a.Robot(0), a.Robot(1)

	// red at (2,2) facing north, blue at (5,4)
	if red.OpponentLR() != 3 || red.OpponentFB() != -2 {
		t.Errorf("red sees blue at (%d,%d), want (3,-2)", red.OpponentLR(), red.OpponentFB())
	}
	// blue facing west sees red ahead and to the right
	if blue.OpponentLR() != 2 || blue.OpponentFB() != 3 {
		t.Errorf("blue sees red at (%d,%d), want (2,3)", blue.OpponentLR(), blue.OpponentFB())
	}
}

func TestRamming(t *testing.T) {
	sc := openScenario()
	sc.Robots[1].Start = Point{X: 2, Y: 1}
	a := newArena(t, sc)
	red, blue := a.Robot(0), a.Robot(1)

	red.Move()
	snap := a.Snapshot()
	if snap.Robots[0].Pos != (Point{X: 2, Y: 2}) {
		t.Error("red should not move into blue")
	}
	if snap.Robots[1].Fuel != 95 || snap.Robots[0].Rams != 1 {
		t.Errorf("blue fuel = %d, rams = %d", snap.Robots[1].Fuel, snap.Robots[0].Rams)
	}

	blue.SetShield(true)
	red.Move()
	if got := a.Snapshot().Robots[1].Fuel; got != 95 {
		t.Errorf("shielded blue lost fuel: %d", got)
	}
}

func TestShieldDrainsPerTick(t *testing.T) {
	sc := openScenario()
	sc.StartFuel = 2
	a := newArena(t, sc)
	red := a.Robot(0)

	red.SetShield(true)
	a.EndTick()
	if red.Fuel() != 1 {
		t.Errorf("fuel after one shielded tick = %d, want 1", red.Fuel())
	}
	a.EndTick()
	snap := a.Snapshot()
	if snap.Robots[0].Fuel != 0 || snap.Robots[0].Shield {
		t.Errorf("state = %+v, want empty tank and shield off", snap.Robots[0])
	}
	if snap.Tick != 2 {
		t.Errorf("tick = %d, want 2", snap.Tick)
	}
	if out := a.OutOfFuel(); len(out) != 1 || out[0] != 0 {
		t.Errorf("OutOfFuel() = %v, want [0]", out)
	}
}

func TestBarrels(t *testing.T) {
	sc := openScenario()
	sc.Barrels = 1
	sc.Placed = []Point{{X: 2, Y: 0}}
	a := newArena(t, sc)
	red := a.Robot(0)

	if red.NumBarrels() != 1 {
		t.Fatalf("NumBarrels() = %d, want 1", red.NumBarrels())
	}
	if red.ClosestBarrelLR() != 0 || red.ClosestBarrelFB() != 2 {
		t.Errorf("barrel at (%d,%d), want (0,2)", red.ClosestBarrelLR(), red.ClosestBarrelFB())
	}

	red.TakeFuel() // nothing under the robot
	if got := a.Snapshot().Robots[0].Collected; got != 0 {
		t.Fatalf("collected = %d without a barrel", got)
	}

	red.Move()
	red.Move()
	red.TakeFuel()
	snap := a.Snapshot()
	if snap.Robots[0].Collected != 1 || snap.Robots[0].Fuel != 100-2+20 {
		t.Errorf("after pickup: %+v", snap.Robots[0])
	}
	if len(snap.Barrels) != 1 || snap.Barrels[0].Pos == (Point{X: 2, Y: 0}) {
		t.Errorf("barrel should respawn elsewhere: %v", snap.Barrels)
	}
}

func TestNoBarrelsReadsZero(t *testing.T) {
	a := newArena(t, openScenario())
	red := a.Robot(0)
	if red.NumBarrels() != 0 || red.ClosestBarrelLR() != 0 || red.ClosestBarrelFB() != 0 {
		t.Error("barrel sensors should read zero on an empty board")
	}
}

func TestSeededSpawnIsDeterministic(t *testing.T) {
	sc := DefaultScenario()
	sc.Seed = 42

	first := newArena(t, sc).Snapshot().Barrels
	second := newArena(t, sc).Snapshot().Barrels
	if len(first) != sc.Barrels {
		t.Fatalf("got %d barrels, want %d", len(first), sc.Barrels)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("barrel %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestNoFuelNoMove(t *testing.T) {
	sc := openScenario()
	sc.StartFuel = 1
	a := newArena(t, sc)
	red := a.Robot(0)

	red.Move()
	red.Move()
	if got := a.Snapshot().Robots[0].Pos; got != (Point{X: 2, Y: 1}) {
		t.Errorf("position = %v, want (2,1)", got)
	}
	red.SetShield(true)
	if a.Snapshot().Robots[0].Shield {
		t.Error("shield should not raise without fuel")
	}
}
