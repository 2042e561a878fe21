package imagepool

import "errors"

var (
	// ErrSizeMismatch reports pixel data whose length does not match the
	// declared dimensions.
	ErrSizeMismatch = errors.New("pixel data length does not match dimensions")

	// ErrZeroSpan reports a cell span with a zero or negative axis.
	ErrZeroSpan = errors.New("cell span must be positive on both axes")

	// ErrOutOfBounds reports a fragment or cell coordinate outside its
	// source bounds.
	ErrOutOfBounds = errors.New("out of bounds")
)
