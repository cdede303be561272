// Package bfs computes shortest step counts from one origin to every
// reachable cell of a gridgraph.GridGraph, where the legality of each step
// is decided on demand by a gridgraph.StepRule.
//
// What
//
//   - Explore cells in non-decreasing distance (step count) from an origin.
//   - Returns a Result containing:
//   - Depth: the distance map, coordinate → distance from the origin
//   - Parent: coordinate → its predecessor in the BFS tree
//   - Order: discovery sequence
//   - Supports a reversed polarity (WithReversed) that evaluates the step
//     rule with swapped operands: one search from a goal yields, for every
//     cell, its forward distance to that goal.
//   - Optional layer observer (WithOnLayer), fired once per completed
//     distance layer, for animation or diagnostics.
//   - Optional per-cell adjacency cache (WithCachedAdjacency) with results
//     identical to on-demand neighbor evaluation.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E): the first time a cell is
//     discovered its distance is final, so no relaxation is needed.
//   - "Shortest route from any of many starts to one goal" collapses into a
//     single reversed search plus an O(1) lookup per candidate.
//
// State
//
//	Every cell moves Unvisited → Queued → Finalized exactly once. Cells the
//	origin cannot reach are simply absent from Depth; there is no sentinel
//	distance. The terrain is never mutated and no state outlives the call,
//	so identical inputs always produce identical results.
//
// Determinism
//
//	Neighbors are expanded in the grid's fixed offset order (up, down,
//	left, right for Conn4), so Order and Parent are fully reproducible.
//
// Complexity (V = W×H cells, d = 4 or 8)
//
//   - Time:   O(V·d)
//   - Memory: O(V)  (queue, Depth, Parent, Order; plus O(V·d) with the cache)
//
// Usage
//
//	gg, _ := gridgraph.New(terrain)
//
//	// forward: distance from start to every cell
//	res, err := bfs.ShortestDistances(gg, start)
//	steps, ok := res.Distance(goal)
//
//	// reversed: distance from every cell to goal
//	back, err := bfs.ShortestDistances(gg, goal, bfs.WithReversed())
//	_, best, ok := back.Nearest(gg.CellsWhere(func(h int) bool { return h == 0 }))
//
// Errors
//
//   - ErrGraphNil           if the grid pointer is nil.
//   - ErrOriginOutOfBounds  if the origin lies outside the terrain.
//   - ErrOptionViolation    if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable        from Result.PathTo for unreached coordinates.
package bfs
