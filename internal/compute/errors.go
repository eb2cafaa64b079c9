package compute

import (
	"errors"
	"fmt"
)

// NotInitializedError reports a Compute call on a module still in the
// Uninitialized state.
//
// Recoverable: the caller may Initialize the module and retry the call.
type NotInitializedError struct {
	// Op is the operation that was attempted.
	Op string
}

// Error implements the error interface.
func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s: module not initialized", e.Op)
}

// IsNotInitialized returns true if the error is a NotInitializedError.
// Uses errors.As to handle wrapped errors.
func IsNotInitialized(err error) bool {
	var ne *NotInitializedError
	return errors.As(err, &ne)
}

// UnknownModeError reports an Initialize call with a mode outside the known
// set. Known modes all behave identically today; validating the tag keeps a
// typo from silently passing as configuration.
type UnknownModeError struct {
	Mode Mode
}

// Error implements the error interface.
func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown mode %q", string(e.Mode))
}

// IsUnknownMode returns true if the error is an UnknownModeError.
func IsUnknownMode(err error) bool {
	var me *UnknownModeError
	return errors.As(err, &me)
}
