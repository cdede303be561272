package worldmap

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/hillwalk/geom"
)

// Render serialises the map row-major, one line per row, without a trailing
// newline. With useColor each cell is printed bold, alternating red and
// green in a checkerboard so individual cells stay distinguishable.
func (m *WorldMap[T]) Render(useColor bool) string {
	if !useColor {
		return m.RenderFunc(func(_ geom.Coord, v T) string { return cellString(v) })
	}
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	red.EnableColor()
	green.EnableColor()

	return m.RenderFunc(func(c geom.Coord, v T) string {
		l := c.Sub(m.offset)
		if (l.X+l.Y)%2 == 0 {
			return red.Sprint(cellString(v))
		}
		return green.Sprint(cellString(v))
	})
}

// RenderFunc serialises the map row-major using fn to format each cell.
// fn receives the world coordinate of the cell.
func (m *WorldMap[T]) RenderFunc(fn func(c geom.Coord, v T) string) string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			b.WriteString(fn(m.offset.Add(geom.C(x, y)), m.cells[y*m.width+x]))
		}
	}
	return b.String()
}

// cellString prints runes and bytes as characters rather than numbers.
func cellString(v any) string {
	switch c := v.(type) {
	case rune:
		return string(c)
	case byte:
		return string(rune(c))
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(v)
	}
}
