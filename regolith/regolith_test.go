package regolith_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/regolith"
)

func loadExample(t *testing.T) []regolith.Path {
	t.Helper()
	f, err := os.Open("testdata/example")
	require.NoError(t, err)
	defer f.Close()
	paths, err := regolith.ParsePaths(f)
	require.NoError(t, err)
	return paths
}

func TestParsePaths(t *testing.T) {
	paths := loadExample(t)
	require.Len(t, paths, 2)
	require.Equal(t, regolith.Path{geom.C(498, 4), geom.C(498, 6), geom.C(496, 6)}, paths[0])
	require.Len(t, paths[1], 4)
}

func TestParsePaths_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "\n", regolith.ErrNoRock},
		{"MissingComma", "498 4 -> 498,6\n", regolith.ErrBadPath},
		{"NotANumber", "498,x\n", regolith.ErrBadPath},
		{"Diagonal", "1,1 -> 3,3\n", regolith.ErrBadPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := regolith.ParsePaths(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewCave_Render(t *testing.T) {
	cave, err := regolith.NewCave(loadExample(t), regolith.DefaultSource)
	require.NoError(t, err)

	want := strings.Join([]string{
		"......+...",
		"..........",
		"..........",
		"..........",
		"....#...##",
		"....#...#.",
		"..###...#.",
		"........#.",
		"........#.",
		"#########.",
	}, "\n")
	require.Equal(t, want, cave.Render(false))
}

func TestDrop(t *testing.T) {
	cave, err := regolith.NewCave(loadExample(t), regolith.DefaultSource)
	require.NoError(t, err)

	pos, err := cave.Drop()
	require.NoError(t, err)
	require.Equal(t, geom.C(500, 8), pos)
	require.NoError(t, cave.Settle(pos))

	pos, err = cave.Drop()
	require.NoError(t, err)
	require.Equal(t, geom.C(499, 8), pos)
	require.False(t, cave.Blocked())
}

func TestPartOne_Example(t *testing.T) {
	got, err := regolith.PartOne(loadExample(t), regolith.DefaultSource)
	require.NoError(t, err)
	require.Equal(t, 24, got)
}

func TestPartTwo_Example(t *testing.T) {
	got, err := regolith.PartTwo(loadExample(t), regolith.DefaultSource)
	require.NoError(t, err)
	require.Equal(t, 93, got)
}
