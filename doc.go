// Package hillwalk is a small spatial toolkit for grid puzzles: an
// offset-addressable world map, a terrain graph with pluggable step rules,
// and a breadth-first search that can run with the step rule reversed.
//
// Packages:
//
//	geom/      — Coord value type, Manhattan distance, direction sets
//	worldmap/  — WorldMap[T]: dense grid addressed by signed world coordinates
//	gridgraph/ — terrain matrix, bounds, neighbor offsets, step rules, adjacency cache
//	bfs/       — ShortestDistances with options, layer observer, paths
//	heightmap/ — parser for the hill-climbing elevation map
//	hill/      — hill-climbing solver and terminal animator
//	regolith/  — falling-sand cave simulation
//	beacon/    — sensor exclusion zones and distress beacon search
//
// Quick ASCII example (climb at most one level per step):
//
//	Sabqponm
//	abcryxxl     S → E in 31 steps;
//	accszExk     nearest 'a' to E in 29 steps
//	acctuvwj     (reversed search from E).
//	abdefghi
//
// Executables live under cmd/: hillclimb, regolith and beacon.
package hillwalk
