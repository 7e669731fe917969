package service

import (
	"encoding/binary"

	"github.com/cronokirby/safenum"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// ReferenceExponentiator computes modular powers with safenum's constant-time
// natural numbers. It is slower than SquareMultiply and exists to cross-check
// it.
type ReferenceExponentiator struct{}

// NewReferenceExponentiator creates the reference engine.
func NewReferenceExponentiator() *ReferenceExponentiator {
	return &ReferenceExponentiator{}
}

// ModExp returns base^exponent mod modulus.
func (r *ReferenceExponentiator) ModExp(base, exponent, modulus uint64) (uint64, error) {
	if modulus == 0 {
		return 0, rsaDomain.ErrZeroModulus
	}
	if modulus == 1 {
		return 0, nil
	}

	base %= modulus
	m := safenum.ModulusFromBytes(uint64Bytes(modulus))
	x := new(safenum.Nat).SetUint64(base)
	y := new(safenum.Nat).SetUint64(exponent)
	z := new(safenum.Nat).Exp(x, y, m)

	return bytesUint64(z.Bytes()), nil
}

func uint64Bytes(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

// bytesUint64 folds a big-endian byte string into a uint64. Callers only pass
// values reduced below a uint64 modulus, so leading bytes beyond eight are zero.
func bytesUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}
