// ABOUTME: Custom error types for the Media RSS core logic
// ABOUTME: Distinguishes caller contract violations from comparison type mismatches

package errors

import (
	"errors"
	"fmt"
)

// InvalidArgumentError represents a caller contract violation: a nil
// parser or encoder, or a required field assigned an empty value.
type InvalidArgumentError struct {
	Arg     string
	Message string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s': %s", e.Arg, e.Message)
}

// TypeMismatchError represents a comparison against an incompatible type.
// Raised only by CompareTo; Equals returns false instead of failing.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// IsInvalidArgument checks if an error is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}

// IsTypeMismatch checks if an error is a TypeMismatchError
func IsTypeMismatch(err error) bool {
	var mismatchErr *TypeMismatchError
	return errors.As(err, &mismatchErr)
}
