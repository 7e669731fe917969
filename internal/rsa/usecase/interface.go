// Package usecase orchestrates the toy RSA operations: whole-message
// transcoding and exhaustive verification of the key parameters.
package usecase

import (
	"context"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// Tracer computes a modular power and the steps that produced it.
type Tracer interface {
	ModExpTrace(base, exponent, modulus uint64) (uint64, []rsaDomain.ExpStep, error)
}

// TranscodeUseCase turns messages into ciphertext units and back. All methods
// are pure: they return step records and never print.
type TranscodeUseCase interface {
	// Transcode encrypts every byte of message in order, then decrypts every
	// resulting unit in order.
	Transcode(ctx context.Context, message []byte) (*rsaDomain.Transcript, error)

	// Encrypt returns one ciphertext unit per byte of message.
	Encrypt(ctx context.Context, message []byte) ([]uint64, error)

	// Decrypt returns one byte per ciphertext unit.
	Decrypt(ctx context.Context, ciphertext []uint64) ([]byte, error)

	// TraceUnit shows the square-and-multiply iterations for encrypting and
	// decrypting a single byte.
	TraceUnit(ctx context.Context, m byte) (*rsaDomain.UnitTrace, error)
}

// VerifyUseCase checks the key parameters against every residue of n.
type VerifyUseCase interface {
	Verify(ctx context.Context) (*rsaDomain.VerifyReport, error)
}
