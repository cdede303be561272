package geom_test

import (
	"testing"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/stretchr/testify/require"
)

func TestCoord_Arithmetic(t *testing.T) {
	a := geom.C(3, -2)
	b := geom.C(-1, 5)

	require.Equal(t, geom.C(2, 3), a.Add(b))
	require.Equal(t, geom.C(4, -7), a.Sub(b))
	require.Equal(t, a, a.Add(b).Sub(b))
	require.Equal(t, 11, a.Manhattan(b))
	require.Equal(t, a.Manhattan(b), b.Manhattan(a))
	require.Equal(t, "(3,-2)", a.String())
}

func TestCoord_Sign(t *testing.T) {
	cases := []struct {
		in, want geom.Coord
	}{
		{geom.C(0, 0), geom.C(0, 0)},
		{geom.C(7, 0), geom.C(1, 0)},
		{geom.C(0, -4), geom.C(0, -1)},
		{geom.C(-3, 9), geom.C(-1, 1)},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.in.Sign(), "Sign(%v)", tc.in)
	}
}

func TestAbs(t *testing.T) {
	require.Equal(t, 4, geom.Abs(-4))
	require.Equal(t, int64(9), geom.Abs(int64(9)))
	require.Equal(t, int8(0), geom.Abs(int8(0)))
}

func TestDirections(t *testing.T) {
	d4 := geom.Dir4()
	require.Len(t, d4, 4)
	for _, d := range d4 {
		require.Equal(t, 1, d.Manhattan(geom.Coord{}), "%v is not a unit step", d)
	}
	d4[0] = geom.C(9, 9)
	require.Equal(t, geom.Up, geom.Dir4()[0], "Dir4 must not share storage")

	d8 := geom.Dir8()
	require.Len(t, d8, 8)
	seen := make(map[geom.Coord]bool)
	for _, d := range d8 {
		require.False(t, seen[d], "duplicate direction %v", d)
		seen[d] = true
	}
}
