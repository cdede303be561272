package gridgraph

import (
	"github.com/katalvlaran/hillwalk/geom"
)

// New constructs a GridGraph from a non-empty, rectangular terrain.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if terrain has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(terrain [][]int, opts ...Option) (*GridGraph, error) {
	if len(terrain) == 0 || len(terrain[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(terrain), len(terrain[0])
	for _, row := range terrain {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := make([][]int, h)
	for y := range terrain {
		cells[y] = make([]int, w)
		copy(cells[y], terrain[y])
	}
	offsets := geom.Dir4()
	if o.Conn == Conn8 {
		offsets = geom.Dir8()
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		Conn:    o.Conn,
		terrain: cells,
		offsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the terrain.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c geom.Coord) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// HeightAt returns the terrain value at c. c must be in bounds.
func (gg *GridGraph) HeightAt(c geom.Coord) int {
	return gg.terrain[c.Y][c.X]
}

// Offsets returns a copy of the neighbor step set.
func (gg *GridGraph) Offsets() []geom.Coord {
	out := make([]geom.Coord, len(gg.offsets))
	copy(out, gg.offsets)
	return out
}

// Neighbors returns the cells reachable from c in one step under rule.
// Steps leaving the terrain are discarded before the rule is consulted.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c geom.Coord, rule StepRule, reversed bool) []geom.Coord {
	var dst []geom.Coord
	from := gg.terrain[c.Y][c.X]
	for _, d := range gg.offsets {
		n := c.Add(d)
		if !gg.InBounds(n) {
			continue
		}
		if rule.Allowed(from, gg.terrain[n.Y][n.X], reversed) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Adjacency precomputes Neighbors for every cell under rule and polarity.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) Adjacency(rule StepRule, reversed bool) *Adjacency {
	lists := make([][]geom.Coord, gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := geom.C(x, y)
			lists[gg.index(c)] = gg.Neighbors(c, rule, reversed)
		}
	}
	return &Adjacency{width: gg.Width, lists: lists}
}

// CellsWhere returns every coordinate whose height satisfies pred,
// in row-major order.
func (gg *GridGraph) CellsWhere(pred func(height int) bool) []geom.Coord {
	var out []geom.Coord
	for y, row := range gg.terrain {
		for x, h := range row {
			if pred(h) {
				out = append(out, geom.C(x, y))
			}
		}
	}
	return out
}

// index maps c to a row‑major index: y*Width + x.
func (gg *GridGraph) index(c geom.Coord) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row‑major index back to a coordinate.
func (gg *GridGraph) Coordinate(idx int) geom.Coord {
	return geom.C(idx%gg.Width, idx/gg.Width)
}
