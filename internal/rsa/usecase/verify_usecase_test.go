package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaService "github.com/allisson/rsatoy/internal/rsa/service"
	"github.com/allisson/rsatoy/internal/rsa/usecase"
)

// brokenEngine returns the wrong value for one base.
type brokenEngine struct {
	inner   rsaService.Exponentiator
	badBase uint64
}

func (b *brokenEngine) ModExp(base, exponent, modulus uint64) (uint64, error) {
	r, err := b.inner.ModExp(base, exponent, modulus)
	if base == b.badBase {
		return (r + 1) % modulus, err
	}
	return r, err
}

func newVerifyUseCase(t *testing.T, params rsaDomain.KeyParams, engine rsaService.Exponentiator, workers int) usecase.VerifyUseCase {
	t.Helper()
	cipher, err := rsaService.NewTextbookCipher(params, rsaService.NewSquareMultiply())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewVerifyUseCase(cipher, engine, rsaService.NewReferenceExponentiator(), workers, logger)
}

func TestVerifyUseCase_Verify(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("toy parameters are consistent", func(t *testing.T) {
		uc := newVerifyUseCase(t, rsaDomain.DefaultKeyParams(), rsaService.NewSquareMultiply(), 4)

		report, err := uc.Verify(context.Background())
		require.NoError(t, err)

		assert.True(t, report.Consistent)
		assert.Equal(t, uint64(3233), report.Checked)
		// phi(3233) residues are coprime to n
		assert.Equal(t, uint64(3120), report.Coprime)
		assert.Empty(t, report.Failures)
		assert.Equal(t, 4, report.Workers)
	})

	t.Run("small modulus caps workers", func(t *testing.T) {
		params, err := rsaDomain.NewKeyParams(3, 5, 3, 3)
		require.NoError(t, err)
		uc := newVerifyUseCase(t, params, rsaService.NewSquareMultiply(), 64)

		report, err := uc.Verify(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Consistent)
		assert.Equal(t, uint64(15), report.Checked)
		assert.Equal(t, 15, report.Workers)
	})

	t.Run("uneven split drops empty workers", func(t *testing.T) {
		params, err := rsaDomain.NewKeyParams(3, 5, 3, 3)
		require.NoError(t, err)
		// chunk = ceil(15/7) = 3, so five workers cover [0, 15)
		uc := newVerifyUseCase(t, params, rsaService.NewSquareMultiply(), 7)

		report, err := uc.Verify(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Consistent)
		assert.Equal(t, uint64(15), report.Checked)
		assert.Equal(t, 5, report.Workers)
	})

	t.Run("engine disagreement is reported", func(t *testing.T) {
		engine := &brokenEngine{inner: rsaService.NewSquareMultiply(), badBase: 65}
		uc := newVerifyUseCase(t, rsaDomain.DefaultKeyParams(), engine, 3)

		report, err := uc.Verify(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Consistent)
		assert.Equal(t, []uint64{65}, report.Failures)
	})

	t.Run("cancelled context", func(t *testing.T) {
		uc := newVerifyUseCase(t, rsaDomain.DefaultKeyParams(), rsaService.NewSquareMultiply(), 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := uc.Verify(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
