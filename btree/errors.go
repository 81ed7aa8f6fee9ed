package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a broken
	// structural invariant found by Check.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidDimension signals an invalid or missing dimension configuration.
	ErrInvalidDimension = errors.New("btree: invalid dimension")
)
