package gridgraph

import (
	"errors"

	"github.com/katalvlaran/hillwalk/geom"
)

// Sentinel errors for gridgraph construction.
var (
	// ErrEmptyGrid indicates the terrain has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: terrain must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal steps.
	Conn8
)

// StepRule reports whether a single step from a cell of height from onto a
// neighbor of height to is allowed. It must be a pure function.
type StepRule func(from, to int) bool

// ClimbRule allows a step onto a neighbor at most one unit higher.
// Stepping down is allowed by any amount.
func ClimbRule(from, to int) bool {
	return to-from <= 1
}

// AnyStep allows every in-bounds step, turning the search into plain
// grid distance.
func AnyStep(_, _ int) bool {
	return true
}

// Allowed evaluates r for the step from → to in the requested polarity.
// Reversed polarity swaps the operands, so a backward step is legal exactly
// when the forward step it undoes would be.
func (r StepRule) Allowed(from, to int, reversed bool) bool {
	if reversed {
		return r(to, from)
	}
	return r(from, to)
}

// Option configures GridGraph construction.
type Option func(*GridOptions)

// GridOptions holds construction parameters.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns Conn4 connectivity.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// WithConnectivity selects the neighbor set.
func WithConnectivity(c Connectivity) Option {
	return func(o *GridOptions) {
		o.Conn = c
	}
}

// GridGraph is an immutable terrain matrix viewed as a graph.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	terrain       [][]int
	offsets       []geom.Coord
}

// Adjacency is a precomputed neighbor list for every cell of a GridGraph,
// built for one StepRule and polarity.
type Adjacency struct {
	width int
	lists [][]geom.Coord // row-major, one entry per cell
}

// Neighbors returns the cached neighbor list of c. The slice must not be modified.
func (a *Adjacency) Neighbors(c geom.Coord) []geom.Coord {
	return a.lists[c.Y*a.width+c.X]
}
