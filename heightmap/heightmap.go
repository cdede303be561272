// Package heightmap parses the hill-climbing input: a rectangular block of
// lowercase elevation letters with one start marker 'S' and one goal
// marker 'E'.
//
// Markers are resolved here, before any search runs: 'S' becomes the
// minimum elevation (0) and 'E' the maximum (25). The resulting terrain is
// purely numeric, ready for gridgraph.New.
package heightmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hillwalk/geom"
)

const (
	// StartMarker marks the search origin.
	StartMarker = 'S'
	// GoalMarker marks the cell with the best signal.
	GoalMarker = 'E'

	// MinElevation is the height of 'a' and of the start marker.
	MinElevation = 0
	// MaxElevation is the height of 'z' and of the goal marker.
	MaxElevation = 25
)

// Sentinel errors for malformed input. All of them are fatal to a puzzle run.
var (
	ErrEmptyInput      = errors.New("heightmap: input has no rows")
	ErrNonRectangular  = errors.New("heightmap: rows have differing lengths")
	ErrInvalidCell     = errors.New("heightmap: invalid elevation character")
	ErrMissingStart    = errors.New("heightmap: no start marker")
	ErrMissingGoal     = errors.New("heightmap: no goal marker")
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
)

// Heightmap is a parsed input: numeric terrain plus the marker positions.
type Heightmap struct {
	Terrain [][]int
	Start   geom.Coord
	Goal    geom.Coord

	// Rows keeps the raw text rows for presentation.
	Rows []string
}

// Width returns the number of columns.
func (h *Heightmap) Width() int { return len(h.Terrain[0]) }

// Height returns the number of rows.
func (h *Heightmap) Height() int { return len(h.Terrain) }

// Elevation converts a lowercase letter to its height.
func Elevation(ch rune) (int, bool) {
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return int(ch - 'a'), true
}

// Parse reads a heightmap from r. Trailing blank lines and CRLF endings are
// tolerated; blank lines between rows are not.
func Parse(r io.Reader) (*Heightmap, error) {
	var (
		hm                  Heightmap
		haveStart, haveGoal bool
		trailingBlank       bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			trailingBlank = true
			continue
		}
		y := len(hm.Terrain)
		if trailingBlank {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrNonRectangular, y+1)
		}
		if y > 0 && len(line) != len(hm.Rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(line), len(hm.Rows[0]))
		}

		row := make([]int, 0, len(line))
		for x, ch := range line {
			switch ch {
			case StartMarker:
				if haveStart {
					return nil, fmt.Errorf("%w: %q at %v", ErrDuplicateMarker, ch, geom.C(x, y))
				}
				haveStart, hm.Start = true, geom.C(x, y)
				row = append(row, MinElevation)
			case GoalMarker:
				if haveGoal {
					return nil, fmt.Errorf("%w: %q at %v", ErrDuplicateMarker, ch, geom.C(x, y))
				}
				haveGoal, hm.Goal = true, geom.C(x, y)
				row = append(row, MaxElevation)
			default:
				h, ok := Elevation(ch)
				if !ok {
					return nil, fmt.Errorf("%w: %q at %v", ErrInvalidCell, ch, geom.C(x, y))
				}
				row = append(row, h)
			}
		}
		hm.Terrain = append(hm.Terrain, row)
		hm.Rows = append(hm.Rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}

	switch {
	case len(hm.Terrain) == 0:
		return nil, ErrEmptyInput
	case !haveStart:
		return nil, ErrMissingStart
	case !haveGoal:
		return nil, ErrMissingGoal
	}
	return &hm, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Heightmap, error) {
	return Parse(strings.NewReader(s))
}
