// Package bfs provides tunable options, result types and error definitions
// for breadth‐first search over a gridgraph.GridGraph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil grid pointer is passed.
	ErrGraphNil = errors.New("bfs: grid is nil")

	// ErrOriginOutOfBounds is returned when the origin lies outside the terrain.
	ErrOriginOutOfBounds = errors.New("bfs: origin outside terrain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for coordinates the search never reached.
	ErrUnreachable = errors.New("bfs: coordinate not reachable")
)

// LayerFunc observes one completed BFS layer: every coordinate discovered at
// distance depth. The slice is owned by the callee once passed.
type LayerFunc func(depth int, layer []geom.Coord)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize the search.
type BFSOptions struct {
	// Rule decides whether a single step between two heights is allowed.
	Rule gridgraph.StepRule

	// Reversed evaluates Rule with swapped operands, so that a search from
	// a goal reproduces the forward reachability of every cell towards it.
	// The traversal itself still expands outward from the origin.
	Reversed bool

	// CachedAdjacency precomputes every cell's neighbor list before the
	// search. Results are identical to on-demand evaluation.
	CachedAdjacency bool

	// OnLayer is called after each layer (all cells at one distance) is
	// complete. It never influences the result.
	OnLayer LayerFunc

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - gridgraph.ClimbRule, forward polarity
//   - neighbors computed on demand
//   - no-op layer observer
//   - no depth limit (MaxDepth == 0)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Rule:     gridgraph.ClimbRule,
		OnLayer:  func(int, []geom.Coord) {},
		MaxDepth: 0,
	}
}

// WithStepRule sets the step-validity rule. A nil rule is ignored.
func WithStepRule(rule gridgraph.StepRule) Option {
	return func(o *BFSOptions) {
		if rule != nil {
			o.Rule = rule
		}
	}
}

// WithReversed inverts the rule polarity for a backward search from a goal.
func WithReversed() Option {
	return func(o *BFSOptions) {
		o.Reversed = true
	}
}

// WithCachedAdjacency precomputes the neighbor list of every cell up front.
func WithCachedAdjacency() Option {
	return func(o *BFSOptions) {
		o.CachedAdjacency = true
	}
}

// WithOnLayer registers an observer invoked once per completed layer.
func WithOnLayer(fn LayerFunc) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a search:
//   - Depth: the distance map, coordinate → shortest step count from the origin.
//     Presence means reachable; absence means unreachable.
//   - Parent: predecessor of each non-origin coordinate in the BFS tree.
//   - Order: coordinates in discovery order (non-decreasing depth).
type Result struct {
	Origin geom.Coord
	Order  []geom.Coord
	Depth  map[geom.Coord]int
	Parent map[geom.Coord]geom.Coord
}

// Distance returns the shortest distance to c and whether c was reached.
func (r *Result) Distance(c geom.Coord) (int, bool) {
	d, ok := r.Depth[c]
	return d, ok
}

// Reachable reports whether c was discovered.
func (r *Result) Reachable(c geom.Coord) bool {
	_, ok := r.Depth[c]
	return ok
}

// Nearest returns the reached candidate with the smallest distance.
// Ties keep the earliest candidate. ok is false when no candidate was reached.
func (r *Result) Nearest(candidates []geom.Coord) (best geom.Coord, dist int, ok bool) {
	for _, c := range candidates {
		d, reached := r.Depth[c]
		if !reached {
			continue
		}
		if !ok || d < dist {
			best, dist, ok = c, d, true
		}
	}
	return best, dist, ok
}

// PathTo reconstructs the path from the origin to dest, both inclusive.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest geom.Coord) ([]geom.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []geom.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get origin → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
