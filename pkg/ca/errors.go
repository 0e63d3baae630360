package ca

import "errors"

// Configuration errors are raised while states, patterns, or grids are being
// set up and never during a step.
var (
	// ErrInvalidNeighborhood reports a Neighborhood value outside the known enum.
	ErrInvalidNeighborhood = errors.New("ca: invalid neighborhood type")
	// ErrMissingSelf reports a sparse pattern without the mandatory (0,0) offset.
	ErrMissingSelf = errors.New("ca: pattern must contain the (0,0) self offset")
	// ErrReservedState reports an attempt to register a sentinel id as a state.
	ErrReservedState = errors.New("ca: state id is reserved")
	// ErrRaggedGrid reports grid rows of unequal length.
	ErrRaggedGrid = errors.New("ca: grid rows must have equal length")
)

// ErrUnknownState reports a rule or grid cell referencing a state that was
// never registered. During Step it aborts the whole step.
var ErrUnknownState = errors.New("ca: unknown cell state")
