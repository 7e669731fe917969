package service

import (
	"fmt"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// TextbookCipher applies raw RSA to one unit at a time: c = m^e mod n and
// m = c^d mod n. There is no padding.
type TextbookCipher struct {
	params rsaDomain.KeyParams
	engine Exponentiator
}

// NewTextbookCipher creates a cipher over validated key parameters.
func NewTextbookCipher(params rsaDomain.KeyParams, engine Exponentiator) (*TextbookCipher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &TextbookCipher{params: params, engine: engine}, nil
}

// Params returns the key parameters.
func (c *TextbookCipher) Params() rsaDomain.KeyParams {
	return c.params
}

// EncryptUnit requires m < n.
func (c *TextbookCipher) EncryptUnit(m byte) (uint64, error) {
	if uint64(m) >= c.params.N {
		return 0, fmt.Errorf("%w: %d >= n=%d", rsaDomain.ErrPlaintextOutOfRange, m, c.params.N)
	}
	return c.engine.ModExp(uint64(m), c.params.E, c.params.N)
}

// DecryptUnit fails rather than truncate when the recovered value is wider
// than a byte.
func (c *TextbookCipher) DecryptUnit(ct uint64) (byte, error) {
	m, err := c.DecryptValue(ct)
	if err != nil {
		return 0, err
	}
	if m > 0xff {
		return 0, fmt.Errorf("%w: %d decrypts to %d", rsaDomain.ErrPlaintextOutOfRange, ct, m)
	}
	return byte(m), nil
}

// DecryptValue requires c < n.
func (c *TextbookCipher) DecryptValue(ct uint64) (uint64, error) {
	if ct >= c.params.N {
		return 0, fmt.Errorf("%w: %d >= n=%d", rsaDomain.ErrCiphertextOutOfRange, ct, c.params.N)
	}
	return c.engine.ModExp(ct, c.params.D, c.params.N)
}
