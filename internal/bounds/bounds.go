// Package bounds implements the clamping policy applied to every computed
// value before it leaves the computation module.
//
// A Range is a closed integer interval [Low, High]. Clamp restricts a value
// to the interval; values already inside pass through unchanged. An inverted
// range (Low > High) is a configuration bug and fails fast with
// InvalidRangeError rather than silently swapping the bounds.
package bounds

import (
	"errors"
	"fmt"
)

// Range is a closed integer interval.
//
// Invariant: Low <= High. Ranges come from configuration and are validated
// there; Clamp re-checks so a bad range can never produce a silent result.
type Range struct {
	Low  int
	High int
}

// Valid reports whether the range satisfies Low <= High.
func (r Range) Valid() bool {
	return r.Low <= r.High
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Low && v <= r.High
}

// String returns the interval in [low, high] notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Low, r.High)
}

// InvalidRangeError reports a Clamp call with an inverted range.
//
// Not recoverable within the component - the range comes from configuration,
// so the fix is a configuration change, not a retry.
type InvalidRangeError struct {
	Low  int
	High int
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: low %d > high %d", e.Low, e.High)
}

// IsInvalidRange returns true if the error is an InvalidRangeError.
// Uses errors.As to handle wrapped errors.
func IsInvalidRange(err error) bool {
	var re *InvalidRangeError
	return errors.As(err, &re)
}

// Clamp restricts v to the closed interval r.
//
// Returns r.Low if v < r.Low, r.High if v > r.High, otherwise v.
// Pure, O(1), no side effects. Fails with InvalidRangeError when r is
// inverted.
func Clamp(v int, r Range) (int, error) {
	if !r.Valid() {
		return 0, &InvalidRangeError{Low: r.Low, High: r.High}
	}
	switch {
	case v < r.Low:
		return r.Low, nil
	case v > r.High:
		return r.High, nil
	default:
		return v, nil
	}
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
