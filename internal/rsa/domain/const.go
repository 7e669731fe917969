// Package domain defines the values that flow through the toy RSA pipeline:
// key parameters, plaintext and ciphertext units, and the step records that make
// every modular operation visible.
//
// Nothing here is secure. The modulus is 3233 and every byte is encrypted on
// its own, without padding.
package domain

// Classic textbook key parameters (p=61, q=53).
const (
	DefaultP   uint64 = 61
	DefaultQ   uint64 = 53
	DefaultN   uint64 = 3233 // P*Q
	DefaultPhi uint64 = 3120 // (P-1)*(Q-1)
	DefaultE   uint64 = 17
	DefaultD   uint64 = 2753 // E*D ≡ 1 (mod Phi)
)

// DefaultMaxMessageBytes bounds one input line, terminator included.
const DefaultMaxMessageBytes = 1024
