package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// RunDecrypt decrypts ciphertext units given as decimal arguments. An argument
// may hold several units separated by whitespace, so the output of the encrypt
// command can be passed as a single quoted string.
func RunDecrypt(
	ctx context.Context,
	useCase rsaUsecase.TranscodeUseCase,
	logger *slog.Logger,
	streams IOTuple,
	args []string,
	format string,
) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	ciphertext, err := parseUnits(args)
	if err != nil {
		return err
	}

	message, err := useCase.Decrypt(ctx, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}

	if format == FormatJSON {
		err = writeJSON(streams.Writer, map[string]any{
			"plaintext": string(message),
			"bytes":     byteValues(message),
		})
	} else {
		_, err = fmt.Fprintf(streams.Writer, "%s\n", message)
	}
	if err != nil {
		return err
	}

	logger.Info("ciphertext decrypted", slog.Int("units", len(ciphertext)))
	return nil
}

func parseUnits(args []string) ([]uint64, error) {
	units := make([]uint64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			u, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", rsaDomain.ErrInvalidCiphertext, field)
			}
			units = append(units, u)
		}
	}
	return units, nil
}

// byteValues keeps JSON output exact for bytes that are not valid UTF-8.
func byteValues(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
