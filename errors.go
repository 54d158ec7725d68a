package timing

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a row argument that must be
// non-negative is negative.
var ErrOutOfRange = errors.New("timing: row out of range")

// InvalidSegmentError reports a segment payload that violates its
// kind's domain (non-positive BPM, a label containing a comma, and so
// on). No mutation is performed when this error is returned.
type InvalidSegmentError struct {
	Kind   string
	Reason string
}

func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("timing: invalid %s segment: %s", e.Kind, e.Reason)
}

func invalidSegment(kind, reason string) error {
	return &InvalidSegmentError{Kind: kind, Reason: reason}
}

// assertionFailure reports an internal invariant violation — a broken
// sort order or a duplicate row slipped past setAtRow. This is always a
// bug in this package, never a caller error, so it panics rather than
// returning an error a caller might plausibly recover from.
type assertionFailure struct {
	msg string
}

func (a assertionFailure) Error() string { return "timing: assertion failed: " + a.msg }

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(assertionFailure{msg: fmt.Sprintf(format, args...)})
	}
}
