package heightmap_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/heightmap"
)

func TestParse_Example(t *testing.T) {
	f, err := os.Open("testdata/example")
	require.NoError(t, err)
	defer f.Close()

	hm, err := heightmap.Parse(f)
	require.NoError(t, err)
	require.Equal(t, 8, hm.Width())
	require.Equal(t, 5, hm.Height())
	require.Equal(t, geom.C(0, 0), hm.Start)
	require.Equal(t, geom.C(5, 2), hm.Goal)
	require.Equal(t, heightmap.MinElevation, hm.Terrain[0][0])
	require.Equal(t, heightmap.MaxElevation, hm.Terrain[2][5])
	require.Equal(t, []int{0, 1, 2, 17, 24, 23, 23, 11}, hm.Terrain[1])
	require.Equal(t, "accszExk", hm.Rows[2])
}

func TestParse_Tolerance(t *testing.T) {
	hm, err := heightmap.ParseString("Sb\r\naE\r\n\n\n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {0, 25}}, hm.Terrain)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", heightmap.ErrEmptyInput},
		{"OnlyBlank", "\n\n", heightmap.ErrEmptyInput},
		{"Ragged", "Sab\nEa\n", heightmap.ErrNonRectangular},
		{"BlankInside", "Sa\n\naE\n", heightmap.ErrNonRectangular},
		{"BadChar", "Sa\naE\nA1\n", heightmap.ErrInvalidCell},
		{"NoStart", "ab\naE\n", heightmap.ErrMissingStart},
		{"NoGoal", "Sb\naa\n", heightmap.ErrMissingGoal},
		{"TwoStarts", "SS\naE\n", heightmap.ErrDuplicateMarker},
		{"TwoGoals", "SE\naE\n", heightmap.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hm, err := heightmap.ParseString(tc.input)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, hm)
		})
	}
}

func TestElevation(t *testing.T) {
	h, ok := heightmap.Elevation('a')
	require.True(t, ok)
	require.Equal(t, 0, h)
	h, ok = heightmap.Elevation('z')
	require.True(t, ok)
	require.Equal(t, 25, h)
	_, ok = heightmap.Elevation('S')
	require.False(t, ok)
}
