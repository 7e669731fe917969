package service

import (
	"math/bits"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// SquareMultiply is the iterative binary square-and-multiply exponentiator.
// Products are formed in 128 bits before reduction, so any uint64 modulus is
// safe from overflow.
type SquareMultiply struct{}

// NewSquareMultiply creates the exponentiation engine.
func NewSquareMultiply() *SquareMultiply {
	return &SquareMultiply{}
}

// ModExp returns base^exponent mod modulus. Modulus 0 is rejected with
// ErrZeroModulus; modulus 1 yields 0.
func (s *SquareMultiply) ModExp(base, exponent, modulus uint64) (uint64, error) {
	if modulus == 0 {
		return 0, rsaDomain.ErrZeroModulus
	}

	result := 1 % modulus
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		base = mulMod(base, base, modulus)
		exponent >>= 1
	}
	return result, nil
}

// ModExpTrace is ModExp that also records every iteration.
func (s *SquareMultiply) ModExpTrace(base, exponent, modulus uint64) (uint64, []rsaDomain.ExpStep, error) {
	if modulus == 0 {
		return 0, nil, rsaDomain.ErrZeroModulus
	}

	steps := make([]rsaDomain.ExpStep, 0, bits.Len64(exponent))
	result := 1 % modulus
	base %= modulus
	for exponent > 0 {
		bit := uint(exponent & 1)
		if bit == 1 {
			result = mulMod(result, base, modulus)
		}
		step := rsaDomain.ExpStep{Exponent: exponent, Bit: bit, Result: result}
		base = mulMod(base, base, modulus)
		step.Base = base
		steps = append(steps, step)
		exponent >>= 1
	}
	return result, steps, nil
}

// mulMod returns a*b mod m for m > 0.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
