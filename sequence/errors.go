package sequence

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sequence: index out of range")
	// ErrEmptySequence indicates a query on a Sequence with no members.
	// New never produces one; only the zero value is empty.
	ErrEmptySequence = errors.New("sequence: no polygons")
)
