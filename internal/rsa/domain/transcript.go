package domain

import (
	"github.com/google/uuid"
)

// EncryptStep records one plaintext unit and the ciphertext it produced.
type EncryptStep struct {
	Plain  byte   `json:"plain"`
	Cipher uint64 `json:"cipher"`
}

// DecryptStep records one ciphertext unit and the plaintext recovered from it.
type DecryptStep struct {
	Cipher uint64 `json:"cipher"`
	Plain  byte   `json:"plain"`
}

// Transcript is the full, ordered record of one encrypt-then-decrypt run.
// Encryptions[i] and Decryptions[i] refer to the same byte position.
type Transcript struct {
	RunID       uuid.UUID     `json:"run_id"`
	Plaintext   []byte        `json:"plaintext"`
	Encryptions []EncryptStep `json:"encryptions"`
	Decryptions []DecryptStep `json:"decryptions"`
	Decrypted   []byte        `json:"decrypted"`
}

// Ciphertext returns the ciphertext units in message order.
func (t *Transcript) Ciphertext() []uint64 {
	out := make([]uint64, len(t.Encryptions))
	for i, step := range t.Encryptions {
		out[i] = step.Cipher
	}
	return out
}

// RoundTripped reports whether decryption reproduced the plaintext exactly.
func (t *Transcript) RoundTripped() bool {
	return string(t.Plaintext) == string(t.Decrypted)
}

// ExpStep is one iteration of square-and-multiply. Exponent and Bit describe
// the exponent before the iteration; Result and Base hold the values after it.
type ExpStep struct {
	Exponent uint64 `json:"exponent"`
	Bit      uint   `json:"bit"`
	Result   uint64 `json:"result"`
	Base     uint64 `json:"base"`
}

// VerifyReport summarises an exhaustive check of the key parameters.
type VerifyReport struct {
	Params     KeyParams `json:"params"`
	Checked    uint64    `json:"checked"`
	Coprime    uint64    `json:"coprime"`
	Failures   []uint64  `json:"failures"`
	Workers    int       `json:"workers"`
	Consistent bool      `json:"consistent"`
}

// UnitTrace shows both modular exponentiations for a single plaintext unit.
type UnitTrace struct {
	Plain        byte      `json:"plain"`
	Cipher       uint64    `json:"cipher"`
	EncryptSteps []ExpStep `json:"encrypt_steps"`
	DecryptSteps []ExpStep `json:"decrypt_steps"`
}
