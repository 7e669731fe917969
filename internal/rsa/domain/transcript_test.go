package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	transcript := &Transcript{
		Plaintext:   []byte("HI"),
		Encryptions: []EncryptStep{{Plain: 'H', Cipher: 3000}, {Plain: 'I', Cipher: 1486}},
		Decryptions: []DecryptStep{{Cipher: 3000, Plain: 'H'}, {Cipher: 1486, Plain: 'I'}},
		Decrypted:   []byte("HI"),
	}

	assert.Equal(t, []uint64{3000, 1486}, transcript.Ciphertext())
	assert.True(t, transcript.RoundTripped())

	transcript.Decrypted = []byte("HJ")
	assert.False(t, transcript.RoundTripped())
}

func TestTranscript_Empty(t *testing.T) {
	transcript := &Transcript{}

	assert.Empty(t, transcript.Ciphertext())
	assert.True(t, transcript.RoundTripped())
}
