// Package geom defines the integer coordinate used to address cells on
// puzzle maps, together with the direction sets used to walk between them.
//
// Coord is a plain comparable value: it can be copied freely and used as a
// map key, which is how distance maps and visited sets are keyed.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is a position (X, Y) on an unbounded signed plane.
// X grows to the right, Y grows downward (row index).
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) Manhattan(o Coord) int {
	return Abs(c.X-o.X) + Abs(c.Y-o.Y)
}

// Sign returns the coordinate with each component clamped to -1, 0 or 1.
// Used to step along axis-aligned segments one cell at a time.
func (c Coord) Sign() Coord {
	return Coord{X: sign(c.X), Y: sign(c.Y)}
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

var (
	// Up, Down, Left and Right are the axis-aligned unit steps.
	Up    = Coord{X: 0, Y: -1}
	Down  = Coord{X: 0, Y: 1}
	Left  = Coord{X: -1, Y: 0}
	Right = Coord{X: 1, Y: 0}
)

// Dir4 returns the four axis-aligned unit steps in a fixed order
// (up, down, left, right). A fresh slice is returned on every call.
func Dir4() []Coord {
	return []Coord{Up, Down, Left, Right}
}

// Dir8 returns Dir4 followed by the four diagonal unit steps.
func Dir8() []Coord {
	return append(Dir4(),
		Coord{X: -1, Y: -1}, Coord{X: 1, Y: -1},
		Coord{X: -1, Y: 1}, Coord{X: 1, Y: 1},
	)
}
