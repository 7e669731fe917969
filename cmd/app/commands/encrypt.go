package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// RunEncrypt reads one line and prints its ciphertext units, space-separated
// in text format or as a JSON array.
func RunEncrypt(
	ctx context.Context,
	useCase rsaUsecase.TranscodeUseCase,
	logger *slog.Logger,
	streams IOTuple,
	maxBytes int,
	format string,
) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	message, err := ReadLine(streams.Reader, maxBytes)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	ciphertext, err := useCase.Encrypt(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to encrypt message: %w", err)
	}

	if format == FormatJSON {
		err = writeJSON(streams.Writer, map[string]any{"ciphertext": ciphertext})
	} else {
		_, err = fmt.Fprintln(streams.Writer, joinUnits(ciphertext))
	}
	if err != nil {
		return err
	}

	logger.Info("message encrypted", slog.Int("units", len(ciphertext)))
	return nil
}

func joinUnits(units []uint64) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = strconv.FormatUint(u, 10)
	}
	return strings.Join(parts, " ")
}
