// Package regolith simulates sand pouring into a cave of rock paths.
//
// The cave is a worldmap.WorldMap[rune] spanning the bounding box of every
// rock vertex and the sand source, so puzzle coordinates (x around 500) are
// used directly. A grain falls straight down, else down-left, else
// down-right, and comes to rest when all three are blocked. A grain whose
// next cell lies off the map has fallen into the abyss.
package regolith

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/worldmap"
)

// Cave tiles.
const (
	Air    = '.'
	Rock   = '#'
	Sand   = 'o'
	Source = '+'
)

var (
	// ErrBadPath is returned for malformed or diagonal rock paths.
	ErrBadPath = errors.New("regolith: malformed rock path")
	// ErrNoRock is returned when the scan contains no rock at all.
	ErrNoRock = errors.New("regolith: no rock paths")
	// ErrAbyss reports a grain that fell off the map.
	ErrAbyss = errors.New("regolith: grain fell into the abyss")
)

// DefaultSource is where sand pours in.
var DefaultSource = geom.C(500, 0)

// Path is a polyline of rock; consecutive vertices share a row or column.
type Path []geom.Coord

// fall lists the moves a grain tries, in order.
var fall = []geom.Coord{geom.C(0, 1), geom.C(-1, 1), geom.C(1, 1)}

// ParsePaths reads one rock path per line: "x,y -> x,y -> ...".
func ParsePaths(r io.Reader) ([]Path, error) {
	var paths []Path
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var p Path
		for _, tok := range strings.Split(text, "->") {
			c, err := parseCoord(strings.TrimSpace(tok))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadPath, line, err)
			}
			if n := len(p); n > 0 && p[n-1].X != c.X && p[n-1].Y != c.Y {
				return nil, fmt.Errorf("%w: line %d: diagonal segment %v -> %v", ErrBadPath, line, p[n-1], c)
			}
			p = append(p, c)
		}
		paths = append(paths, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("regolith: read: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoRock
	}
	return paths, nil
}

func parseCoord(s string) (geom.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return geom.Coord{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.C(x, y), nil
}

// Cave is the simulated cross-section.
type Cave struct {
	grid   *worldmap.WorldMap[rune]
	source geom.Coord
}

// NewCave draws paths into a map sized to the bounding box of all rock
// vertices and source.
func NewCave(paths []Path, source geom.Coord) (*Cave, error) {
	lo, hi := source, source
	for _, p := range paths {
		for _, c := range p {
			lo = geom.C(min(lo.X, c.X), min(lo.Y, c.Y))
			hi = geom.C(max(hi.X, c.X), max(hi.Y, c.Y))
		}
	}
	grid, err := worldmap.FromBounds(lo, hi, rune(Air))
	if err != nil {
		return nil, err
	}
	cave := &Cave{grid: grid, source: source}
	if err := grid.Set(source, Source); err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := cave.drawPath(p); err != nil {
			return nil, err
		}
	}
	return cave, nil
}

func (c *Cave) drawPath(p Path) error {
	for i, at := range p {
		if i == 0 {
			if err := c.grid.Set(at, Rock); err != nil {
				return err
			}
			continue
		}
		prev := p[i-1]
		step := at.Sub(prev).Sign()
		for pos := prev; pos != at; {
			pos = pos.Add(step)
			if err := c.grid.Set(pos, Rock); err != nil {
				return err
			}
		}
	}
	return nil
}

// Drop releases one grain from the source and returns where it comes to
// rest, without placing it. Returns ErrAbyss if it leaves the map.
func (c *Cave) Drop() (geom.Coord, error) {
	pos := c.source
	for {
		moved := false
		for _, d := range fall {
			next := pos.Add(d)
			v, err := c.grid.Get(next)
			if err != nil {
				return next, ErrAbyss
			}
			if v == Rock || v == Sand {
				continue
			}
			pos, moved = next, true
			break
		}
		if !moved {
			return pos, nil
		}
	}
}

// Settle places a resting grain at pos.
func (c *Cave) Settle(pos geom.Coord) error {
	return c.grid.Set(pos, Sand)
}

// Blocked reports whether sand has piled up over the source.
func (c *Cave) Blocked() bool {
	v, err := c.grid.Get(c.source)
	return err == nil && v == Sand
}

// Render returns the cave as text, one row per line.
func (c *Cave) Render(useColor bool) string {
	return c.grid.Render(useColor)
}

// PartOne counts grains that come to rest before sand starts falling into the abyss.
func PartOne(paths []Path, source geom.Coord) (int, error) {
	cave, err := NewCave(paths, source)
	if err != nil {
		return 0, err
	}
	n := 0
	for {
		pos, err := cave.Drop()
		if errors.Is(err, ErrAbyss) {
			return n, nil
		}
		if err := cave.Settle(pos); err != nil {
			return n, err
		}
		n++
		if pos == source {
			return n, nil
		}
	}
}

// PartTwo adds an infinite floor two rows below the lowest rock and counts
// grains until the source itself is covered. The floor is drawn just wide
// enough to hold the full pile, which keeps every grain on the map.
func PartTwo(paths []Path, source geom.Coord) (int, error) {
	maxY := source.Y
	for _, p := range paths {
		for _, c := range p {
			maxY = max(maxY, c.Y)
		}
	}
	floorY := maxY + 2
	reach := floorY - source.Y
	floor := Path{geom.C(source.X-reach, floorY), geom.C(source.X+reach, floorY)}

	all := make([]Path, 0, len(paths)+1)
	all = append(all, paths...)
	all = append(all, floor)
	cave, err := NewCave(all, source)
	if err != nil {
		return 0, err
	}

	n := 0
	for !cave.Blocked() {
		pos, err := cave.Drop()
		if err != nil {
			return n, fmt.Errorf("regolith: grain %d: %w", n+1, err)
		}
		if err := cave.Settle(pos); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
