// Package service implements the arithmetic behind the toy RSA demo: the
// square-and-multiply engine and the per-unit encrypt/decrypt wrappers built
// on it.
package service

import (
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// Exponentiator computes base^exponent mod modulus.
type Exponentiator interface {
	// ModExp returns base^exponent mod modulus in [0, modulus).
	ModExp(base, exponent, modulus uint64) (uint64, error)
}

// UnitCipher encrypts and decrypts single message units under one key.
type UnitCipher interface {
	// EncryptUnit computes m^e mod n for one plaintext byte.
	EncryptUnit(m byte) (uint64, error)

	// DecryptUnit computes c^d mod n and returns it as a plaintext byte.
	DecryptUnit(c uint64) (byte, error)

	// DecryptValue computes c^d mod n without narrowing the result.
	DecryptValue(c uint64) (uint64, error)

	// Params returns the key parameters the cipher was built with.
	Params() rsaDomain.KeyParams
}
