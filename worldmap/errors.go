package worldmap

import "errors"

var (
	// ErrBadShape is returned when a map is requested with width or height <= 0.
	ErrBadShape = errors.New("worldmap: width and height must be positive")

	// ErrOutOfBounds is returned when a world coordinate (or row) translates
	// outside the backing grid. Get, Set and Row return it instead of panicking.
	ErrOutOfBounds = errors.New("worldmap: coordinate out of bounds")
)
