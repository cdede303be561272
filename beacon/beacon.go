// Package beacon reasons about sensor coverage on the beacon-exclusion map.
//
// Every sensor reports its closest beacon; no other beacon can lie within
// that Manhattan radius of the sensor. PartOne counts the positions on one
// row where a beacon cannot be, scanning a single-row worldmap. PartTwo
// finds the only uncovered position inside a square search area.
package beacon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/worldmap"
)

// Row map tiles.
const (
	Unknown  = '.'
	Covered  = '#'
	Sensor   = 'S'
	Beacon   = 'B'
	tuneBase = 4000000
)

var (
	// ErrBadReport is returned for a line that is not a sensor report.
	ErrBadReport = errors.New("beacon: malformed sensor report")
	// ErrNoDistressBeacon is returned when every position in the search area is covered.
	ErrNoDistressBeacon = errors.New("beacon: no uncovered position in search area")
)

var reportRx = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// Report is one sensor with its closest beacon.
type Report struct {
	Sensor geom.Coord
	Beacon geom.Coord
	// Radius is the Manhattan distance from Sensor to Beacon.
	Radius int
}

// Covers reports whether c lies within the sensor's exclusion diamond.
func (r Report) Covers(c geom.Coord) bool {
	return r.Sensor.Manhattan(c) <= r.Radius
}

// span returns the inclusive x range the diamond covers on row y.
func (r Report) span(y int) (lo, hi int, ok bool) {
	half := r.Radius - geom.Abs(r.Sensor.Y-y)
	if half < 0 {
		return 0, 0, false
	}
	return r.Sensor.X - half, r.Sensor.X + half, true
}

// ParseReports reads one sensor report per line.
func ParseReports(r io.Reader) ([]Report, error) {
	var out []Report
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m := reportRx.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadReport, line, text)
		}
		var v [4]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadReport, line, err)
			}
			v[i] = n
		}
		s, b := geom.C(v[0], v[1]), geom.C(v[2], v[3])
		out = append(out, Report{Sensor: s, Beacon: b, Radius: s.Manhattan(b)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("beacon: read: %w", err)
	}
	return out, nil
}

// RowMap builds a one-row map of row y covering every sensor diamond that
// reaches it, marked with sensors, beacons and covered cells.
// ok is false when no sensor reaches the row.
func RowMap(reports []Report, y int) (m *worldmap.WorldMap[rune], ok bool, err error) {
	var relevant []Report
	lo, hi := 0, 0
	for _, r := range reports {
		a, b, reaches := r.span(y)
		if !reaches {
			continue
		}
		if len(relevant) == 0 {
			lo, hi = a, b
		}
		lo, hi = min(lo, a), max(hi, b)
		relevant = append(relevant, r)
	}
	if len(relevant) == 0 {
		return nil, false, nil
	}

	m, err = worldmap.New(1, hi-lo+1, rune(Unknown), geom.C(lo, y))
	if err != nil {
		return nil, false, err
	}
	for _, r := range relevant {
		a, b, _ := r.span(y)
		for x := a; x <= b; x++ {
			if err := m.Set(geom.C(x, y), Covered); err != nil {
				return nil, false, err
			}
		}
	}

	// Beacons and sensors on the row overwrite coverage. Beacons are
	// collected first since several sensors may report the same one.
	onRow := mapset.New[geom.Coord]()
	for _, r := range reports {
		if r.Beacon.Y == y {
			onRow.Put(r.Beacon)
		}
		if r.Sensor.Y == y {
			_ = m.Set(r.Sensor, Sensor)
		}
	}
	onRow.Each(func(c geom.Coord) {
		_ = m.Set(c, Beacon)
	})
	return m, true, nil
}

// PartOne counts positions on row y where a beacon cannot be present.
// Sensor positions count; known beacon positions do not.
func PartOne(reports []Report, y int) (int, error) {
	m, ok, err := RowMap(reports, y)
	if err != nil || !ok {
		return 0, err
	}
	row, err := m.Row(y)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range row {
		if v == Covered || v == Sensor {
			n++
		}
	}
	return n, nil
}

// DistressBeacon finds the single position in [0, limit]² no sensor covers.
// Each row is scanned left to right, jumping past the remainder of any
// diamond the scan lands in.
func DistressBeacon(reports []Report, limit int) (geom.Coord, error) {
	for y := 0; y <= limit; y++ {
	scan:
		for x := 0; x <= limit; {
			c := geom.C(x, y)
			for _, r := range reports {
				if r.Covers(c) {
					_, hi, _ := r.span(y)
					x = hi + 1
					continue scan
				}
			}
			return c, nil
		}
	}
	return geom.Coord{}, ErrNoDistressBeacon
}

// TuningFrequency is x*4000000 + y.
func TuningFrequency(c geom.Coord) int64 {
	return int64(c.X)*tuneBase + int64(c.Y)
}

// PartTwo returns the tuning frequency of the distress beacon within [0, limit]².
func PartTwo(reports []Report, limit int) (int64, error) {
	c, err := DistressBeacon(reports, limit)
	if err != nil {
		return 0, err
	}
	return TuningFrequency(c), nil
}
