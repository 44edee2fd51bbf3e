package arena

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
)

func TestDefaultScenarioIsValid(t *testing.T) {
	if err := DefaultScenario().Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}
}

func TestParseScenario(t *testing.T) {
	data := []byte(`
name: corridor
width: 20
height: 5
seed: 9
barrels: 2
robots:
  - name: alpha
    start: {x: 0, y: 2}
    heading: east
  - name: beta
    start: {x: 19, y: 2}
    heading: w
barrel_positions:
  - {x: 10, y: 2}
`)
	sc, err := ParseScenario(data)
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}

	if sc.Name != "corridor" || sc.Width != 20 || sc.Height != 5 {
		t.Errorf("scenario = %s", sc)
	}
	if sc.StartFuel != 100 || sc.RamDamage != 5 {
		t.Errorf("defaults not kept: start_fuel=%d ram_damage=%d", sc.StartFuel, sc.RamDamage)
	}
	if sc.Robots[0].Heading != East || sc.Robots[1].Heading != West {
		t.Errorf("headings = %s, %s", sc.Robots[0].Heading, sc.Robots[1].Heading)
	}
	if len(sc.Placed) != 1 || sc.Placed[0] != (Point{X: 10, Y: 2}) {
		t.Errorf("barrel positions = %v", sc.Placed)
	}
}

func TestParseScenarioEmptyUsesDefaults(t *testing.T) {
	sc, err := ParseScenario(nil)
	if err != nil {
		t.Fatalf("ParseScenario(nil): %v", err)
	}
	if sc.Width != 12 || len(sc.Robots) != 2 {
		t.Errorf("scenario = %s with %d robots", sc, len(sc.Robots))
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", "name: x\ncolour: red\n"},
		{"bad heading", "robots:\n  - {name: a, heading: up}\n  - {name: b, start: {x: 1, y: 1}}\n"},
		{"too small", "width: 2\n"},
		{"one robot", "robots:\n  - {name: a}\n"},
		{"shared start", "robots:\n  - {name: a}\n  - {name: b}\n"},
		{"outside", "robots:\n  - {name: a, start: {x: 40, y: 0}}\n  - {name: b}\n"},
		{"no fuel", "start_fuel: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.data))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidScenario) {
				t.Errorf("ParseScenario() error = %v, want INVALID_SCENARIO", err)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadScenario(filepath.Join(dir, "missing.yaml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing scenario error = %v", err)
	}

	path := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(path, []byte("name: small\nwidth: 6\nheight: 6\nrobots:\n  - {name: a, start: {x: 0, y: 0}}\n  - {name: b, start: {x: 5, y: 5}}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "small" || sc.Width != 6 {
		t.Errorf("scenario = %s", sc)
	}
}
