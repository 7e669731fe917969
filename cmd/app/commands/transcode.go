package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// Prompt is written before the input line is read.
const Prompt = "Enter text: "

// RunTranscode is the interactive demo: it prompts for a line, encrypts each
// byte, decrypts each ciphertext unit and prints every step followed by the
// recovered text. With showSteps the square-and-multiply iterations for the
// first byte are printed too.
func RunTranscode(
	ctx context.Context,
	useCase rsaUsecase.TranscodeUseCase,
	logger *slog.Logger,
	streams IOTuple,
	maxBytes int,
	showSteps bool,
) error {
	if _, err := fmt.Fprint(streams.Writer, Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	message, err := ReadLine(streams.Reader, maxBytes)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	transcript, err := useCase.Transcode(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to transcode message: %w", err)
	}

	if showSteps && len(message) > 0 {
		trace, err := useCase.TraceUnit(ctx, message[0])
		if err != nil {
			return fmt.Errorf("failed to trace first unit: %w", err)
		}
		if err := writeUnitTrace(streams.Writer, trace); err != nil {
			return err
		}
	}

	if err := writeTranscript(streams.Writer, transcript); err != nil {
		return err
	}

	logger.Info("transcode completed",
		slog.String("run_id", transcript.RunID.String()),
		slog.Int("units", len(transcript.Encryptions)),
	)

	return nil
}

// writeTranscript is the presentation pass over a finished transcript.
// Characters are written as raw bytes.
func writeTranscript(w io.Writer, t *rsaDomain.Transcript) error {
	p := &printer{w: w}

	p.printf("\nEncrypting...\n")
	for _, step := range t.Encryptions {
		p.printf("'%s' -> %d\n", []byte{step.Plain}, step.Cipher)
	}

	p.printf("\nDecrypting...\n")
	for _, step := range t.Decryptions {
		p.printf("%d -> '%s'\n", step.Cipher, []byte{step.Plain})
	}

	p.printf("\nDecrypted text: %s\n", t.Decrypted)
	return p.err
}

func writeUnitTrace(w io.Writer, trace *rsaDomain.UnitTrace) error {
	p := &printer{w: w}

	p.printf("\nSquare-and-multiply for '%s' (m=%d):\n", []byte{trace.Plain}, trace.Plain)
	writeExpSteps(p, trace.EncryptSteps)
	p.printf("  => c = %d\n", trace.Cipher)

	p.printf("\nSquare-and-multiply for %d:\n", trace.Cipher)
	writeExpSteps(p, trace.DecryptSteps)
	p.printf("  => m = %d\n", trace.Plain)

	return p.err
}

func writeExpSteps(p *printer, steps []rsaDomain.ExpStep) {
	for _, step := range steps {
		p.printf("  exp=%-5d bit=%d res=%-5d base=%d\n", step.Exponent, step.Bit, step.Result, step.Base)
	}
}

// printer keeps the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("failed to write output: %w", err)
	}
}
