package contiguous

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel every checked access and position failure
// unwraps to.
var ErrOutOfRange = errors.New("contiguous: out of range")

// RangeError reports a checked operation that was given an index or position
// outside the container, or that needs an element of an empty container.
type RangeError struct {
	Op    string // Operation, e.g. "Vector.At"
	Index int    // Offending index; -1 when the operation takes none
	Len   int    // Container length at the time of the call
}

func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Index < 0 && e.Len == 0 {
		return fmt.Sprintf("contiguous: %s: empty container", e.Op)
	}
	return fmt.Sprintf("contiguous: %s: index out of range [%d] with length %d", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func rangeError(op string, index, n int) error {
	return &RangeError{Op: op, Index: index, Len: n}
}
