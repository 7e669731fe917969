// Package errors provides the error categories shared by every layer of rsatoy.
// Domain packages wrap these sentinels so callers can classify a failure with Is
// without knowing which component produced it.
package errors

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	// ErrInvalidInput indicates a value that violates a precondition (bad key
	// parameters, an unparsable ciphertext integer, a zero modulus).
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange indicates a value outside the residue range it must live in.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnavailable indicates that input could not be obtained at all.
	ErrUnavailable = errors.New("unavailable")

	// ErrMismatch indicates that two computations that must agree did not.
	ErrMismatch = errors.New("mismatch")
)

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string for the context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
