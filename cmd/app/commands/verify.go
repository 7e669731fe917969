package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/rsatoy/internal/errors"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// RunVerify checks every residue of n and prints a summary. An inconsistent
// report is printed and then returned as an error so the process exits
// non-zero.
func RunVerify(
	ctx context.Context,
	useCase rsaUsecase.VerifyUseCase,
	logger *slog.Logger,
	streams IOTuple,
	format string,
) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	report, err := useCase.Verify(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify key parameters: %w", err)
	}

	if format == FormatJSON {
		err = writeJSON(streams.Writer, report)
	} else {
		err = writeVerifyText(streams, report)
	}
	if err != nil {
		return err
	}

	if !report.Consistent {
		logger.Warn("verification found failures", slog.Int("failures", len(report.Failures)))
		return errors.Wrapf(errors.ErrMismatch, "%d residue(s) failed verification", len(report.Failures))
	}
	return nil
}

func writeVerifyText(streams IOTuple, report *rsaDomain.VerifyReport) error {
	p := &printer{w: streams.Writer}
	p.printf("Checked %d residue(s) of n=%d with %d worker(s)\n", report.Checked, report.Params.N, report.Workers)
	p.printf("Coprime residues (Fermat check): %d\n", report.Coprime)
	if report.Consistent {
		p.printf("Result: OK\n")
	} else {
		p.printf("Result: FAILED %v\n", report.Failures)
	}
	return p.err
}
