package life

import "github.com/pkg/errors"

// Error values reported by the simulation core. Callers classify failures
// with errors.Is; every error is fatal to the current run.
var (
	// ErrInvalidArgument covers non-positive dimensions and negative
	// generation counts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds reports coordinate access outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrUnknownPattern reports a pattern name that is not registered.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrPatternDoesNotFit reports a pattern whose bounding box exceeds
	// the target grid. The run is rejected rather than truncated.
	ErrPatternDoesNotFit = errors.New("pattern does not fit grid")

	// ErrBadNotation reports malformed slash notation.
	ErrBadNotation = errors.New("malformed pattern notation")
)
