// Package validation provides custom validation rules for the application.
package validation

import (
	"math/bits"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/rsatoy/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Product validates that a uint64 equals A*B. A product that does not fit in
// 64 bits never matches.
type Product struct {
	A, B uint64
}

// Validate checks value against the product of A and B.
func (p Product) Validate(value interface{}) error {
	v, ok := value.(uint64)
	if !ok {
		return validation.NewError("validation_product_type", "must be an unsigned integer")
	}
	hi, lo := bits.Mul64(p.A, p.B)
	if hi != 0 || lo != v {
		return validation.NewError("validation_product", "must equal the product of its factors")
	}
	return nil
}

// InverseModulo validates that a uint64 is the multiplicative inverse of Other
// modulo Modulus, i.e. value*Other ≡ 1 (mod Modulus).
type InverseModulo struct {
	Other   uint64
	Modulus uint64
}

// Validate checks the congruence using a 128-bit intermediate product.
func (r InverseModulo) Validate(value interface{}) error {
	v, ok := value.(uint64)
	if !ok {
		return validation.NewError("validation_inverse_type", "must be an unsigned integer")
	}
	if r.Modulus < 2 {
		return validation.NewError("validation_inverse_modulus", "modulus must be at least 2")
	}
	hi, lo := bits.Mul64(v, r.Other)
	if bits.Rem64(hi, lo, r.Modulus) != 1 {
		return validation.NewError("validation_inverse", "must be the modular inverse of its partner exponent")
	}
	return nil
}

// ByteRange validates that an int lies in [1, 1<<20], the range accepted for
// message buffer sizes.
var ByteRange = validation.By(func(value interface{}) error {
	v, ok := value.(int)
	if !ok {
		return validation.NewError("validation_byte_range_type", "must be an integer")
	}
	if v < 1 || v > 1<<20 {
		return validation.NewError("validation_byte_range", "must be between 1 and 1048576")
	}
	return nil
})
