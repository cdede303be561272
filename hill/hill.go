// Package hill solves the hill-climbing puzzle: find the fewest steps from
// the start marker to the goal when each step may climb at most one unit
// (and drop any amount).
//
// Part one is a forward search from the start. Part two asks for the best
// start among every lowest cell; instead of one search per candidate it runs
// a single reversed search from the goal and reads each candidate's
// distance from that map.
package hill

import (
	"errors"

	"github.com/katalvlaran/hillwalk/bfs"
	"github.com/katalvlaran/hillwalk/gridgraph"
	"github.com/katalvlaran/hillwalk/heightmap"
)

// ErrGoalUnreachable is returned when no allowed route reaches the goal.
var ErrGoalUnreachable = errors.New("hill: goal unreachable")

// Option configures a solve.
type Option func(*options)

type options struct {
	onLayer bfs.LayerFunc
	cached  bool
}

// WithObserver forwards every completed BFS layer to fn (e.g. Animator.OnLayer).
func WithObserver(fn bfs.LayerFunc) Option {
	return func(o *options) { o.onLayer = fn }
}

// WithCachedAdjacency precomputes neighbor lists before searching.
func WithCachedAdjacency() Option {
	return func(o *options) { o.cached = true }
}

func (o options) bfsOptions() []bfs.Option {
	var out []bfs.Option
	if o.onLayer != nil {
		out = append(out, bfs.WithOnLayer(o.onLayer))
	}
	if o.cached {
		out = append(out, bfs.WithCachedAdjacency())
	}
	return out
}

// PartOne returns the fewest steps from hm.Start to hm.Goal.
func PartOne(hm *heightmap.Heightmap, opts ...Option) (int, error) {
	gg, o, err := prepare(hm, opts)
	if err != nil {
		return 0, err
	}
	res, err := bfs.ShortestDistances(gg, hm.Start, o.bfsOptions()...)
	if err != nil {
		return 0, err
	}
	d, ok := res.Distance(hm.Goal)
	if !ok {
		return 0, ErrGoalUnreachable
	}
	return d, nil
}

// PartTwo returns the fewest steps to hm.Goal from any lowest-elevation cell.
func PartTwo(hm *heightmap.Heightmap, opts ...Option) (int, error) {
	gg, o, err := prepare(hm, opts)
	if err != nil {
		return 0, err
	}
	res, err := bfs.ShortestDistances(gg, hm.Goal, append(o.bfsOptions(), bfs.WithReversed())...)
	if err != nil {
		return 0, err
	}
	lows := gg.CellsWhere(func(h int) bool { return h == heightmap.MinElevation })
	_, d, ok := res.Nearest(lows)
	if !ok {
		return 0, ErrGoalUnreachable
	}
	return d, nil
}

func prepare(hm *heightmap.Heightmap, opts []Option) (*gridgraph.GridGraph, options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	gg, err := gridgraph.New(hm.Terrain)
	return gg, o, err
}
