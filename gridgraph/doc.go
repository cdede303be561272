// Package gridgraph treats a rectangular terrain matrix as an implicit,
// unweighted graph whose edges are decided on demand by a step rule.
//
// What:
//
//   - GridGraph wraps a [][]int terrain (terrain[y][x], (0,0) top-left),
//     deep-copied and validated once at construction.
//   - Neighbor offsets follow the chosen Connectivity: Conn4 (up, down,
//     left, right) or Conn8 (adds diagonals).
//   - Neighbors filters candidate steps by bounds first, then by a StepRule
//     applied in forward or reversed polarity.
//   - Adjacency materialises the same neighbor lists for every cell, for
//     callers that traverse the graph more than once.
//   - CellsWhere collects coordinates whose height satisfies a predicate.
//
// Why:
//
//   - Hill-climbing style puzzles never need an explicit edge list: whether
//     a step is legal is a pure function of two heights. Reversing that
//     function lets a single search from the goal answer "distance from any
//     of these starts".
//
// Reversed polarity:
//
//	A reversed step c→n is legal iff the forward step n→c is legal, i.e. the
//	rule is evaluated as rule(height(n), height(c)). For ClimbRule this is
//	the negated height difference: height(c) - height(n) <= 1.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - Neighbors:  O(d), d = 4 or 8.
//   - Adjacency:  O(W×H×d) time and memory.
//   - CellsWhere: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      terrain has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
