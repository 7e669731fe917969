package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/rsatoy/internal/errors"
)

func TestDefaultKeyParams(t *testing.T) {
	k := DefaultKeyParams()

	assert.Equal(t, k.P*k.Q, k.N)
	assert.Equal(t, (k.P-1)*(k.Q-1), k.Phi)
	assert.Equal(t, uint64(1), (k.E*k.D)%k.Phi)
	require.NoError(t, k.Validate())
}

func TestNewKeyParams(t *testing.T) {
	t.Run("derives modulus and totient", func(t *testing.T) {
		k, err := NewKeyParams(61, 53, 17, 2753)
		require.NoError(t, err)
		assert.Equal(t, DefaultKeyParams(), k)
	})

	t.Run("other textbook pair", func(t *testing.T) {
		// p=11, q=13: phi=120, 7*103 = 721 = 6*120+1
		k, err := NewKeyParams(11, 13, 7, 103)
		require.NoError(t, err)
		assert.Equal(t, uint64(143), k.N)
		assert.Equal(t, uint64(120), k.Phi)
	})

	t.Run("exponents not inverse", func(t *testing.T) {
		_, err := NewKeyParams(61, 53, 17, 2754)
		assert.ErrorIs(t, err, ErrInvalidKeyParams)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("degenerate modulus", func(t *testing.T) {
		_, err := NewKeyParams(1, 1, 1, 1)
		assert.ErrorIs(t, err, ErrDegenerateModulus)
	})

	t.Run("zero prime", func(t *testing.T) {
		_, err := NewKeyParams(0, 53, 17, 2753)
		assert.ErrorIs(t, err, ErrDegenerateModulus)
	})
}

func TestKeyParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(k *KeyParams)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(k *KeyParams) {},
		},
		{
			name:    "modulus not product",
			mutate:  func(k *KeyParams) { k.N = 3235 },
			wantErr: ErrInvalidKeyParams,
		},
		{
			name:    "wrong totient",
			mutate:  func(k *KeyParams) { k.Phi = 3233 },
			wantErr: ErrInvalidKeyParams,
		},
		{
			name:    "missing private exponent",
			mutate:  func(k *KeyParams) { k.D = 0 },
			wantErr: ErrInvalidKeyParams,
		},
		{
			name:    "zero modulus",
			mutate:  func(k *KeyParams) { k.N = 0 },
			wantErr: ErrDegenerateModulus,
		},
		{
			name:    "modulus one",
			mutate:  func(k *KeyParams) { k.N = 1 },
			wantErr: ErrDegenerateModulus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := DefaultKeyParams()
			tt.mutate(&k)
			err := k.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
