package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMalformedKey indicates a key that does not decode into exactly two integers.
	ErrMalformedKey = errors.New("gridgraph: malformed coordinate key")
)
