package arena

import (
	"fmt"
	"strings"
)

// Heading is the direction a robot faces. Y grows towards the south.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Arrow returns a single-character symbol for rendering
func (h Heading) Arrow() string {
	return [...]string{"^", ">", "v", "<"}[h&3]
}

func (h Heading) Left() Heading  { return (h + 3) % 4 }
func (h Heading) Right() Heading { return (h + 1) % 4 }
func (h Heading) Back() Heading  { return (h + 2) % 4 }

func (h Heading) delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// ParseHeading accepts full names and single letters
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return North, fmt.Errorf("unknown heading %q", s)
}

// UnmarshalText lets scenarios spell headings as words
func (h *Heading) UnmarshalText(text []byte) error {
	v, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Point is a grid cell
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// relative converts an offset into the frame of a robot facing h:
// lateral is positive to the right, forward positive ahead.
func relative(h Heading, from, to Point) (lateral, forward int) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch h {
	case North:
		return dx, -dy
	case East:
		return dy, dx
	case South:
		return -dx, dy
	default:
		return -dy, -dx
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
