package usecase

import (
	"context"
	"time"

	"github.com/allisson/rsatoy/internal/metrics"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// transcodeUseCaseWithMetrics decorates TranscodeUseCase with metrics instrumentation.
type transcodeUseCaseWithMetrics struct {
	next    TranscodeUseCase
	metrics metrics.BusinessMetrics
}

// NewTranscodeUseCaseWithMetrics wraps a TranscodeUseCase with metrics recording.
func NewTranscodeUseCaseWithMetrics(useCase TranscodeUseCase, m metrics.BusinessMetrics) TranscodeUseCase {
	return &transcodeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *transcodeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, units int, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	t.metrics.RecordOperation(ctx, operation, status)
	t.metrics.RecordDuration(ctx, operation, time.Since(start), status)
	if err == nil {
		t.metrics.RecordUnits(ctx, operation, units)
	}
}

// Transcode records metrics for whole-message round trips.
func (t *transcodeUseCaseWithMetrics) Transcode(ctx context.Context, message []byte) (*rsaDomain.Transcript, error) {
	start := time.Now()
	transcript, err := t.next.Transcode(ctx, message)
	t.record(ctx, "transcode", start, len(message), err)
	return transcript, err
}

// Encrypt records metrics for encryption.
func (t *transcodeUseCaseWithMetrics) Encrypt(ctx context.Context, message []byte) ([]uint64, error) {
	start := time.Now()
	ciphertext, err := t.next.Encrypt(ctx, message)
	t.record(ctx, "encrypt", start, len(message), err)
	return ciphertext, err
}

// Decrypt records metrics for decryption.
func (t *transcodeUseCaseWithMetrics) Decrypt(ctx context.Context, ciphertext []uint64) ([]byte, error) {
	start := time.Now()
	message, err := t.next.Decrypt(ctx, ciphertext)
	t.record(ctx, "decrypt", start, len(ciphertext), err)
	return message, err
}

// TraceUnit records metrics for single-unit traces.
func (t *transcodeUseCaseWithMetrics) TraceUnit(ctx context.Context, m byte) (*rsaDomain.UnitTrace, error) {
	start := time.Now()
	trace, err := t.next.TraceUnit(ctx, m)
	t.record(ctx, "trace_unit", start, 1, err)
	return trace, err
}

// verifyUseCaseWithMetrics decorates VerifyUseCase with metrics instrumentation.
type verifyUseCaseWithMetrics struct {
	next    VerifyUseCase
	metrics metrics.BusinessMetrics
}

// NewVerifyUseCaseWithMetrics wraps a VerifyUseCase with metrics recording.
func NewVerifyUseCaseWithMetrics(useCase VerifyUseCase, m metrics.BusinessMetrics) VerifyUseCase {
	return &verifyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Verify records metrics for the exhaustive sweep. An inconsistent report
// counts as an error.
func (v *verifyUseCaseWithMetrics) Verify(ctx context.Context) (*rsaDomain.VerifyReport, error) {
	start := time.Now()
	report, err := v.next.Verify(ctx)

	status := metrics.StatusSuccess
	if err != nil || !report.Consistent {
		status = metrics.StatusError
	}
	v.metrics.RecordOperation(ctx, "verify", status)
	v.metrics.RecordDuration(ctx, "verify", time.Since(start), status)
	if report != nil {
		v.metrics.RecordUnits(ctx, "verify", int(report.Checked))
	}

	return report, err
}
