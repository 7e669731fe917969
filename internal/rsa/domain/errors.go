package domain

import (
	"github.com/allisson/rsatoy/internal/errors"
)

// Toy RSA error definitions.
//
// Each wraps one of the categories from internal/errors so that commands can
// report them uniformly.
var (
	// ErrZeroModulus is returned by the exponentiation engine for modulus 0.
	ErrZeroModulus = errors.Wrap(errors.ErrInvalidInput, "modulus must be non-zero")

	// ErrDegenerateModulus indicates key parameters whose modulus is below 2,
	// which leaves no room for any plaintext besides 0.
	ErrDegenerateModulus = errors.Wrap(errors.ErrInvalidInput, "degenerate modulus")

	// ErrInvalidKeyParams indicates that n, phi, e and d are not consistent.
	ErrInvalidKeyParams = errors.Wrap(errors.ErrInvalidInput, "invalid key parameters")

	// ErrInvalidCiphertext indicates a ciphertext unit that could not be parsed.
	ErrInvalidCiphertext = errors.Wrap(errors.ErrInvalidInput, "invalid ciphertext")

	// ErrPlaintextOutOfRange indicates a plaintext unit that is not below n, or
	// a decrypted value that does not fit in one byte.
	ErrPlaintextOutOfRange = errors.Wrap(errors.ErrOutOfRange, "plaintext unit out of range")

	// ErrCiphertextOutOfRange indicates a ciphertext unit that is not below n.
	ErrCiphertextOutOfRange = errors.Wrap(errors.ErrOutOfRange, "ciphertext unit out of range")

	// ErrMessageTooLong indicates an input line longer than the message buffer.
	ErrMessageTooLong = errors.Wrap(errors.ErrOutOfRange, "message too long")

	// ErrInputUnavailable indicates that the input stream ended before any data.
	ErrInputUnavailable = errors.Wrap(errors.ErrUnavailable, "input unavailable")

	// ErrReferenceMismatch indicates that the engine and the reference
	// exponentiation disagreed.
	ErrReferenceMismatch = errors.Wrap(errors.ErrMismatch, "reference mismatch")
)
