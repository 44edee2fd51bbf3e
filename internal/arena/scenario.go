package arena

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
)

// Scenario describes the starting layout of a match
type Scenario struct {
	Name       string        `yaml:"name"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Seed       int64         `yaml:"seed"`
	StartFuel  int           `yaml:"start_fuel"`
	BarrelFuel int           `yaml:"barrel_fuel"`
	Barrels    int           `yaml:"barrels"`     // barrels kept on the board
	RamDamage  int           `yaml:"ram_damage"`  // fuel lost when rammed without shield
	Robots     []RobotConfig `yaml:"robots"`
	Placed     []Point       `yaml:"barrel_positions,omitempty"`
}

// RobotConfig is the starting state of one robot
type RobotConfig struct {
	Name    string  `yaml:"name"`
	Start   Point   `yaml:"start"`
	Heading Heading `yaml:"heading"`
}

// DefaultScenario returns the built-in 12x12 arena
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:       "default",
		Width:      12,
		Height:     12,
		Seed:       1,
		StartFuel:  100,
		BarrelFuel: 20,
		Barrels:    3,
		RamDamage:  5,
		Robots: []RobotConfig{
			{Name: "red", Start: Point{X: 1, Y: 1}, Heading: South},
			{Name: "blue", Start: Point{X: 10, Y: 10}, Heading: North},
		},
	}
}

// ParseScenario decodes a YAML scenario. Missing numeric fields fall back
// to the default scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	sc := DefaultScenario()
	sc.Robots = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, mdwerror.Wrap(err, "failed to parse scenario").
			WithCode(mdwerror.CodeInvalidScenario)
	}
	if len(sc.Robots) == 0 {
		sc.Robots = DefaultScenario().Robots
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// LoadScenario reads a YAML scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, mdwerror.Newf("scenario %s not found", path).WithCode(mdwerror.CodeNotFound)
		}
		return nil, mdwerror.Wrap(err, "failed to read scenario").WithCode(mdwerror.CodeInvalidScenario)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, mdwerror.Wrap(err, path).WithDetail("file", path)
	}
	return sc, nil
}

// Validate checks dimensions, robot placement and fuel values
func (s *Scenario) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return mdwerror.Newf(format, args...).
			WithCode(mdwerror.CodeInvalidScenario).
			WithDetail("scenario", s.Name)
	}

	if s.Width < 3 || s.Height < 3 {
		return invalid("arena must be at least 3x3, got %dx%d", s.Width, s.Height)
	}
	if s.StartFuel <= 0 {
		return invalid("start_fuel must be positive, got %d", s.StartFuel)
	}
	if s.BarrelFuel < 0 || s.Barrels < 0 || s.RamDamage < 0 {
		return invalid("barrel_fuel, barrels and ram_damage must not be negative")
	}
	if len(s.Robots) != 2 {
		return invalid("exactly two robots required, got %d", len(s.Robots))
	}
	if s.Barrels+len(s.Robots) > s.Width*s.Height {
		return invalid("too many barrels for a %dx%d arena", s.Width, s.Height)
	}

	seen := make(map[Point]string)
	for i, r := range s.Robots {
		if r.Name == "" {
			return invalid("robot %d has no name", i)
		}
		if !s.inside(r.Start) {
			return invalid("robot %s starts outside the arena at %v", r.Name, r.Start)
		}
		if other, ok := seen[r.Start]; ok {
			return invalid("robots %s and %s share a start cell", other, r.Name)
		}
		seen[r.Start] = r.Name
	}
	for _, p := range s.Placed {
		if !s.inside(p) {
			return invalid("barrel outside the arena at %v", p)
		}
	}
	return nil
}

func (s *Scenario) inside(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

func (s *Scenario) String() string {
	return fmt.Sprintf("%s (%dx%d, %d barrels)", s.Name, s.Width, s.Height, s.Barrels)
}
