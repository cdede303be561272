package worldmap

import (
	"github.com/katalvlaran/hillwalk/geom"
)

// WorldMap is a fixed-size grid of T addressed by world coordinates.
// Cells live in a single row-major slice; the map is never resized.
type WorldMap[T any] struct {
	cells  []T
	offset geom.Coord
	width  int
	height int
}

// New allocates a height×width map pre-filled with fill. offset is the world
// coordinate of the top-left cell.
// Returns ErrBadShape if height or width is not positive.
func New[T any](height, width int, fill T, offset geom.Coord) (*WorldMap[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadShape
	}
	cells := make([]T, height*width)
	for i := range cells {
		cells[i] = fill
	}

	return &WorldMap[T]{
		cells:  cells,
		offset: offset,
		width:  width,
		height: height,
	}, nil
}

// FromBounds allocates a map covering the inclusive world rectangle
// [lo, hi]. lo becomes the offset.
// Returns ErrBadShape if hi lies above or left of lo.
func FromBounds[T any](lo, hi geom.Coord, fill T) (*WorldMap[T], error) {
	return New(hi.Y-lo.Y+1, hi.X-lo.X+1, fill, lo)
}

// Width returns the number of columns.
func (m *WorldMap[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *WorldMap[T]) Height() int { return m.height }

// Offset returns the world coordinate stored at local (0,0).
func (m *WorldMap[T]) Offset() geom.Coord { return m.offset }

// Bounds returns the inclusive world-space corners of the map.
func (m *WorldMap[T]) Bounds() (lo, hi geom.Coord) {
	return m.offset, m.offset.Add(geom.C(m.width-1, m.height-1))
}

// Contains reports whether the world coordinate c lies on the map.
func (m *WorldMap[T]) Contains(c geom.Coord) bool {
	_, ok := m.index(c)
	return ok
}

// Get returns the cell at world coordinate c, or ErrOutOfBounds.
func (m *WorldMap[T]) Get(c geom.Coord) (T, error) {
	i, ok := m.index(c)
	if !ok {
		var zero T
		return zero, ErrOutOfBounds
	}
	return m.cells[i], nil
}

// Set overwrites the cell at world coordinate c.
// On ErrOutOfBounds the map is left unmodified.
func (m *WorldMap[T]) Set(c geom.Coord, v T) error {
	i, ok := m.index(c)
	if !ok {
		return ErrOutOfBounds
	}
	m.cells[i] = v
	return nil
}

// Row returns a copy of the full row at world-space y, or ErrOutOfBounds.
func (m *WorldMap[T]) Row(y int) ([]T, error) {
	ly := y - m.offset.Y
	if ly < 0 || ly >= m.height {
		return nil, ErrOutOfBounds
	}
	row := make([]T, m.width)
	copy(row, m.cells[ly*m.width:(ly+1)*m.width])
	return row, nil
}

// Count returns how many cells satisfy pred.
func (m *WorldMap[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range m.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// index translates a world coordinate to a position in cells.
func (m *WorldMap[T]) index(c geom.Coord) (int, bool) {
	l := c.Sub(m.offset)
	if l.X < 0 || l.X >= m.width || l.Y < 0 || l.Y >= m.height {
		return 0, false
	}
	return l.Y*m.width + l.X, true
}
