package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/rsatoy/internal/validation"
)

// KeyParams is the fixed RSA tuple. It is built once at startup and passed
// by value to everything that needs it; no component mutates it.
//
// Invariants: N = P*Q, Phi = (P-1)*(Q-1), E*D ≡ 1 (mod Phi).
type KeyParams struct {
	P   uint64 `json:"p"`
	Q   uint64 `json:"q"`
	N   uint64 `json:"n"`
	Phi uint64 `json:"phi"`
	E   uint64 `json:"e"`
	D   uint64 `json:"d"`
}

// DefaultKeyParams returns the compiled-in toy parameters.
func DefaultKeyParams() KeyParams {
	return KeyParams{
		P:   DefaultP,
		Q:   DefaultQ,
		N:   DefaultN,
		Phi: DefaultPhi,
		E:   DefaultE,
		D:   DefaultD,
	}
}

// NewKeyParams derives N and Phi from the primes and validates the result.
func NewKeyParams(p, q, e, d uint64) (KeyParams, error) {
	k := KeyParams{P: p, Q: q, N: p * q, E: e, D: d}
	if p > 0 && q > 0 {
		k.Phi = (p - 1) * (q - 1)
	}
	if err := k.Validate(); err != nil {
		return KeyParams{}, err
	}
	return k, nil
}

// Validate checks the key-parameter invariants. Primality of P and Q is not
// checked.
func (k KeyParams) Validate() error {
	if k.N < 2 {
		return fmt.Errorf("%w: n=%d", ErrDegenerateModulus, k.N)
	}

	err := validation.ValidateStruct(&k,
		validation.Field(&k.P, validation.Required, validation.Min(uint64(2))),
		validation.Field(&k.Q, validation.Required, validation.Min(uint64(2))),
		validation.Field(&k.N, customValidation.Product{A: k.P, B: k.Q}),
		validation.Field(&k.Phi,
			validation.Required,
			validation.When(k.P > 1 && k.Q > 1, customValidation.Product{A: k.P - 1, B: k.Q - 1}),
		),
		validation.Field(&k.E, validation.Required, customValidation.InverseModulo{Other: k.D, Modulus: k.Phi}),
		validation.Field(&k.D, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidKeyParams, err.Error())
	}
	return nil
}
