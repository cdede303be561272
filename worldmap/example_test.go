package worldmap_test

import (
	"fmt"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/worldmap"
)

// ExampleWorldMap demonstrates world-space addressing with negative
// coordinates: the map covers x ∈ [-2, 2], y ∈ [-1, 1].
func ExampleWorldMap() {
	m, _ := worldmap.FromBounds(geom.C(-2, -1), geom.C(2, 1), '.')
	_ = m.Set(geom.C(0, 0), 'S')
	_ = m.Set(geom.C(-2, -1), '#')

	if err := m.Set(geom.C(3, 0), '#'); err != nil {
		fmt.Println("set (3,0):", err)
	}
	fmt.Println(m.Render(false))
	// Output:
	// set (3,0): worldmap: coordinate out of bounds
	// #....
	// ..S..
	// .....
}
