package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/allisson/rsatoy/internal/errors"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaService "github.com/allisson/rsatoy/internal/rsa/service"
)

// transcodeUseCase implements TranscodeUseCase one unit at a time.
type transcodeUseCase struct {
	cipher   rsaService.UnitCipher
	tracer   Tracer
	maxUnits int
	logger   *slog.Logger
}

// Transcode returns a transcript whose RunID correlates it with log lines.
func (t *transcodeUseCase) Transcode(ctx context.Context, message []byte) (*rsaDomain.Transcript, error) {
	runID := uuid.Must(uuid.NewV7())

	ciphertext, err := t.Encrypt(ctx, message)
	if err != nil {
		return nil, err
	}

	transcript := &rsaDomain.Transcript{
		RunID:       runID,
		Plaintext:   append([]byte{}, message...),
		Encryptions: make([]rsaDomain.EncryptStep, len(message)),
		Decryptions: make([]rsaDomain.DecryptStep, len(ciphertext)),
		Decrypted:   make([]byte, len(ciphertext)),
	}
	for i, c := range ciphertext {
		transcript.Encryptions[i] = rsaDomain.EncryptStep{Plain: message[i], Cipher: c}
	}

	for i, c := range ciphertext {
		m, err := t.cipher.DecryptUnit(c)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to decrypt unit %d", i)
		}
		transcript.Decryptions[i] = rsaDomain.DecryptStep{Cipher: c, Plain: m}
		transcript.Decrypted[i] = m
	}

	t.logger.Debug("message transcoded",
		slog.String("run_id", runID.String()),
		slog.Int("units", len(message)),
		slog.Bool("round_tripped", transcript.RoundTripped()),
	)

	return transcript, nil
}

// Encrypt fails with ErrMessageTooLong beyond maxUnits bytes.
func (t *transcodeUseCase) Encrypt(ctx context.Context, message []byte) ([]uint64, error) {
	if err := t.checkLength(len(message)); err != nil {
		return nil, err
	}

	ciphertext := make([]uint64, len(message))
	for i, m := range message {
		c, err := t.cipher.EncryptUnit(m)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to encrypt unit %d", i)
		}
		ciphertext[i] = c
	}
	return ciphertext, nil
}

// Decrypt fails with ErrMessageTooLong beyond maxUnits units.
func (t *transcodeUseCase) Decrypt(ctx context.Context, ciphertext []uint64) ([]byte, error) {
	if err := t.checkLength(len(ciphertext)); err != nil {
		return nil, err
	}

	message := make([]byte, len(ciphertext))
	for i, c := range ciphertext {
		m, err := t.cipher.DecryptUnit(c)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to decrypt unit %d", i)
		}
		message[i] = m
	}
	return message, nil
}

// TraceUnit runs the traced engine with the cipher's exponents.
func (t *transcodeUseCase) TraceUnit(ctx context.Context, m byte) (*rsaDomain.UnitTrace, error) {
	params := t.cipher.Params()
	if uint64(m) >= params.N {
		return nil, fmt.Errorf("%w: %d >= n=%d", rsaDomain.ErrPlaintextOutOfRange, m, params.N)
	}

	c, encryptSteps, err := t.tracer.ModExpTrace(uint64(m), params.E, params.N)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to trace encryption")
	}
	back, decryptSteps, err := t.tracer.ModExpTrace(c, params.D, params.N)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to trace decryption")
	}
	if back != uint64(m) {
		return nil, fmt.Errorf("%w: %d decrypted to %d", rsaDomain.ErrReferenceMismatch, m, back)
	}

	return &rsaDomain.UnitTrace{
		Plain:        m,
		Cipher:       c,
		EncryptSteps: encryptSteps,
		DecryptSteps: decryptSteps,
	}, nil
}

func (t *transcodeUseCase) checkLength(units int) error {
	if units > t.maxUnits {
		return fmt.Errorf("%w: %d units, limit %d", rsaDomain.ErrMessageTooLong, units, t.maxUnits)
	}
	return nil
}

// NewTranscodeUseCase creates a TranscodeUseCase. maxUnits bounds the number
// of units accepted by a single call.
func NewTranscodeUseCase(
	cipher rsaService.UnitCipher,
	tracer Tracer,
	maxUnits int,
	logger *slog.Logger,
) TranscodeUseCase {
	return &transcodeUseCase{
		cipher:   cipher,
		tracer:   tracer,
		maxUnits: maxUnits,
		logger:   logger,
	}
}
