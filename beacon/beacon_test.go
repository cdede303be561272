package beacon_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillwalk/beacon"
	"github.com/katalvlaran/hillwalk/geom"
)

func loadExample(t *testing.T) []beacon.Report {
	t.Helper()
	f, err := os.Open("testdata/example")
	require.NoError(t, err)
	defer f.Close()
	reports, err := beacon.ParseReports(f)
	require.NoError(t, err)
	return reports
}

func TestParseReports(t *testing.T) {
	reports := loadExample(t)
	require.Len(t, reports, 14)
	require.Equal(t, beacon.Report{
		Sensor: geom.C(2, 18),
		Beacon: geom.C(-2, 15),
		Radius: 7,
	}, reports[0])
	require.Equal(t, 9, reports[6].Radius)
}

func TestParseReports_Errors(t *testing.T) {
	for _, input := range []string{
		"Sensor at x=2, y=18\n",
		"Sensor at x=a, y=18: closest beacon is at x=-2, y=15\n",
		"Sensor at x=2, y=18: closest beacon is at x=-2, y=15 extra\n",
	} {
		_, err := beacon.ParseReports(strings.NewReader(input))
		require.ErrorIs(t, err, beacon.ErrBadReport, "input %q", input)
	}
}

func TestReport_Covers(t *testing.T) {
	r := beacon.Report{Sensor: geom.C(8, 7), Beacon: geom.C(2, 10), Radius: 9}
	require.True(t, r.Covers(geom.C(8, 7)))
	require.True(t, r.Covers(geom.C(8, 16)))
	require.True(t, r.Covers(geom.C(2, 10)))
	require.False(t, r.Covers(geom.C(8, 17)))
	require.False(t, r.Covers(geom.C(-2, 7)))
}

func TestRowMap(t *testing.T) {
	m, ok, err := beacon.RowMap(loadExample(t), 10)
	require.NoError(t, err)
	require.True(t, ok)

	lo, hi := m.Bounds()
	require.Equal(t, geom.C(-2, 10), lo)
	require.Equal(t, geom.C(24, 10), hi)

	v, err := m.Get(geom.C(2, 10))
	require.NoError(t, err)
	require.Equal(t, rune(beacon.Beacon), v)

	_, ok, err = beacon.RowMap(loadExample(t), 1000)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRowMap_SensorOnRow(t *testing.T) {
	m, ok, err := beacon.RowMap(loadExample(t), 11)
	require.NoError(t, err)
	require.True(t, ok)
	v, err := m.Get(geom.C(0, 11))
	require.NoError(t, err)
	require.Equal(t, rune(beacon.Sensor), v)
}

func TestPartOne_Example(t *testing.T) {
	got, err := beacon.PartOne(loadExample(t), 10)
	require.NoError(t, err)
	require.Equal(t, 26, got)

	got, err = beacon.PartOne(loadExample(t), 1000)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestPartTwo_Example(t *testing.T) {
	reports := loadExample(t)
	c, err := beacon.DistressBeacon(reports, 20)
	require.NoError(t, err)
	require.Equal(t, geom.C(14, 11), c)
	for _, r := range reports {
		require.False(t, r.Covers(c))
	}

	got, err := beacon.PartTwo(reports, 20)
	require.NoError(t, err)
	require.Equal(t, int64(56000011), got)
}

func TestPartTwo_FullyCovered(t *testing.T) {
	reports := []beacon.Report{{Sensor: geom.C(2, 2), Beacon: geom.C(2, 10), Radius: 8}}
	_, err := beacon.PartTwo(reports, 4)
	require.ErrorIs(t, err, beacon.ErrNoDistressBeacon)
}
