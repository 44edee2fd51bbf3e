package ast

// mockRobot records mutator calls and serves scripted sensor readings
type mockRobot struct {
	calls []string

	fuel      int
	walls     []int // successive wallDist readings; the last one repeats
	wallReads int
}

func (m *mockRobot) Move()       { m.calls = append(m.calls, "move") }
func (m *mockRobot) TurnLeft()   { m.calls = append(m.calls, "turnL") }
func (m *mockRobot) TurnRight()  { m.calls = append(m.calls, "turnR") }
func (m *mockRobot) TakeFuel()   { m.calls = append(m.calls, "takeFuel") }
func (m *mockRobot) IdleWait()   { m.calls = append(m.calls, "wait") }
func (m *mockRobot) TurnAround() { m.calls = append(m.calls, "turnAround") }

func (m *mockRobot) SetShield(on bool) {
	if on {
		m.calls = append(m.calls, "shieldOn")
		return
	}
	m.calls = append(m.calls, "shieldOff")
}

func (m *mockRobot) Fuel() int            { return m.fuel }
func (m *mockRobot) OpponentLR() int      { return 1 }
func (m *mockRobot) OpponentFB() int      { return 2 }
func (m *mockRobot) NumBarrels() int      { return 3 }
func (m *mockRobot) ClosestBarrelLR() int { return 4 }
func (m *mockRobot) ClosestBarrelFB() int { return 5 }

func (m *mockRobot) WallDistance() int {
	if len(m.walls) == 0 {
		return 0
	}
	i := m.wallReads
	if i >= len(m.walls) {
		i = len(m.walls) - 1
	}
	m.wallReads++
	return m.walls[i]
}

func (m *mockRobot) count(call string) int {
	n := 0
	for _, c := range m.calls {
		if c == call {
			n++
		}
	}
	return n
}
