package commands

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/rsatoy/internal/errors"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaService "github.com/allisson/rsatoy/internal/rsa/service"
	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// newToyUseCase wires the real engine and cipher over the default key.
func newToyUseCase(t *testing.T) rsaUsecase.TranscodeUseCase {
	t.Helper()

	engine := rsaService.NewSquareMultiply()
	cipher, err := rsaService.NewTextbookCipher(rsaDomain.DefaultKeyParams(), engine)
	require.NoError(t, err)

	return rsaUsecase.NewTranscodeUseCase(cipher, engine, rsaDomain.DefaultMaxMessageBytes-1, slog.Default())
}

func TestParseFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON} {
		got, err := parseFormat(format)
		require.NoError(t, err)
		assert.Equal(t, format, got)
	}

	_, err := parseFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "invalid format: yaml")
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, map[string]int{"n": 3233}))
	assert.Equal(t, "{\n  \"n\": 3233\n}\n", out.String())
}
