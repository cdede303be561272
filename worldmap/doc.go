// Package worldmap provides WorldMap, a dense 2D grid addressed by signed
// world-space coordinates.
//
// What:
//
//   - A WorldMap owns one contiguous []T of Width×Height cells plus an
//     offset: the world coordinate stored at local (0,0).
//   - Every access translates world → local (local = world - offset) and is
//     bounds-checked; out-of-range access returns ErrOutOfBounds and never
//     panics, clamps or wraps.
//   - Row extraction supports single-row scans without walking the map cell
//     by cell.
//   - Render serialises the map row-major for debugging, optionally colored.
//
// Why:
//
//   - Puzzle inputs place rocks, sand, sensors and beacons at coordinates
//     that are negative or far from the origin. Translating once here keeps
//     bounds logic out of every caller, and a flat slice keeps the tens of
//     thousands of point queries of a sand simulation cheap.
//
// Complexity:
//
//   - New / FromBounds: O(W×H) time and memory.
//   - Get, Set, Contains: O(1).
//   - Row: O(W).
//   - Render: O(W×H).
//
// Errors:
//
//   - ErrBadShape:    non-positive width or height at construction.
//   - ErrOutOfBounds: coordinate or row outside the map.
//
// A WorldMap is not safe for concurrent mutation; it is meant to be built
// and updated by the single puzzle run that owns it.
package worldmap
