package bfs

import (
	"github.com/gammazero/deque"

	"github.com/katalvlaran/hillwalk/geom"
	"github.com/katalvlaran/hillwalk/gridgraph"
)

// queueItem pairs a coordinate with its BFS depth.
type queueItem struct {
	at    geom.Coord
	depth int
}

// walker encapsulates mutable BFS state. It is owned by one search call.
type walker struct {
	grid  *gridgraph.GridGraph
	opts  BFSOptions
	adj   *gridgraph.Adjacency
	queue deque.Deque[queueItem]
	res   *Result

	layerDepth int
	layer      []geom.Coord
}

// ShortestDistances runs breadth-first search on gg starting from origin,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrOriginOutOfBounds or ErrOptionViolation for invalid
// input; a search over valid input cannot fail.
//
// Complexity: O(W×H×d) time, O(W×H) memory.
func ShortestDistances(gg *gridgraph.GridGraph, origin geom.Coord, opts ...Option) (*Result, error) {
	if gg == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !gg.InBounds(origin) {
		return nil, ErrOriginOutOfBounds
	}

	n := gg.Width * gg.Height
	w := &walker{
		grid: gg,
		opts: o,
		res: &Result{
			Origin: origin,
			Order:  make([]geom.Coord, 0, n),
			Depth:  make(map[geom.Coord]int, n),
			Parent: make(map[geom.Coord]geom.Coord, n),
		},
	}
	if o.CachedAdjacency {
		w.adj = gg.Adjacency(o.Rule, o.Reversed)
	}

	// Seed queue with the origin (no parent)
	w.discover(origin, 0)
	w.loop()
	w.flushLayer()

	return w.res, nil
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for w.queue.Len() > 0 {
		item := w.queue.PopFront()
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.at) {
			// first discovery is final: BFS dequeues in non-decreasing depth
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Parent[nbr] = item.at
			w.discover(nbr, next)
		}
	}
}

// discover records c at depth d, reports any finished layer, and enqueues c.
func (w *walker) discover(c geom.Coord, d int) {
	if d != w.layerDepth {
		w.flushLayer()
		w.layerDepth = d
	}
	w.layer = append(w.layer, c)
	w.res.Depth[c] = d
	w.res.Order = append(w.res.Order, c)
	w.queue.PushBack(queueItem{at: c, depth: d})
}

// flushLayer hands the accumulated layer to the observer.
func (w *walker) flushLayer() {
	if len(w.layer) == 0 {
		return
	}
	w.opts.OnLayer(w.layerDepth, w.layer)
	w.layer = nil
}

func (w *walker) neighbors(c geom.Coord) []geom.Coord {
	if w.adj != nil {
		return w.adj.Neighbors(c)
	}
	return w.grid.Neighbors(c, w.opts.Rule, w.opts.Reversed)
}
