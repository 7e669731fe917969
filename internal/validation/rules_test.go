package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/rsatoy/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("n: must equal the product of its factors"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "product of its factors")
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name      string
		rule      Product
		value     interface{}
		shouldErr bool
	}{
		{name: "toy modulus", rule: Product{A: 61, B: 53}, value: uint64(3233)},
		{name: "toy totient", rule: Product{A: 60, B: 52}, value: uint64(3120)},
		{name: "wrong product", rule: Product{A: 61, B: 53}, value: uint64(3234), shouldErr: true},
		{name: "overflowing product", rule: Product{A: 1 << 40, B: 1 << 40}, value: uint64(0), shouldErr: true},
		{name: "wrong type", rule: Product{A: 1, B: 1}, value: 1, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInverseModulo(t *testing.T) {
	tests := []struct {
		name      string
		rule      InverseModulo
		value     interface{}
		shouldErr bool
	}{
		{name: "toy exponents", rule: InverseModulo{Other: 2753, Modulus: 3120}, value: uint64(17)},
		{name: "symmetric", rule: InverseModulo{Other: 17, Modulus: 3120}, value: uint64(2753)},
		{name: "not inverse", rule: InverseModulo{Other: 2754, Modulus: 3120}, value: uint64(17), shouldErr: true},
		{name: "degenerate modulus", rule: InverseModulo{Other: 1, Modulus: 1}, value: uint64(1), shouldErr: true},
		{name: "wrong type", rule: InverseModulo{Other: 1, Modulus: 7}, value: "17", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestByteRange(t *testing.T) {
	assert.NoError(t, ByteRange.Validate(1024))
	assert.NoError(t, ByteRange.Validate(1))
	assert.Error(t, ByteRange.Validate(0))
	assert.Error(t, ByteRange.Validate(1<<20+1))
	assert.Error(t, ByteRange.Validate("1024"))
}
