package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/rsatoy/internal/errors"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaMocks "github.com/allisson/rsatoy/internal/rsa/usecase/mocks"
)

func TestRunVerify(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	params := rsaDomain.DefaultKeyParams()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &rsaMocks.MockVerifyUseCase{}
		mockUseCase.On("Verify", ctx).Return(&rsaDomain.VerifyReport{
			Params:     params,
			Checked:    3233,
			Coprime:    3120,
			Workers:    4,
			Consistent: true,
		}, nil)

		var out bytes.Buffer
		err := RunVerify(ctx, mockUseCase, logger, IOTuple{Writer: &out}, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Checked 3233 residue(s) of n=3233 with 4 worker(s)")
		assert.Contains(t, out.String(), "Coprime residues (Fermat check): 3120")
		assert.Contains(t, out.String(), "Result: OK")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &rsaMocks.MockVerifyUseCase{}
		mockUseCase.On("Verify", ctx).Return(&rsaDomain.VerifyReport{
			Params:     params,
			Checked:    3233,
			Coprime:    3120,
			Workers:    2,
			Consistent: true,
		}, nil)

		var out bytes.Buffer
		err := RunVerify(ctx, mockUseCase, logger, IOTuple{Writer: &out}, "json")

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"checked": 3233`)
		assert.Contains(t, out.String(), `"consistent": true`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("inconsistent", func(t *testing.T) {
		mockUseCase := &rsaMocks.MockVerifyUseCase{}
		mockUseCase.On("Verify", ctx).Return(&rsaDomain.VerifyReport{
			Params:   params,
			Checked:  3233,
			Failures: []uint64{7, 11},
			Workers:  1,
		}, nil)

		var out bytes.Buffer
		err := RunVerify(ctx, mockUseCase, logger, IOTuple{Writer: &out}, "text")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMismatch))
		assert.Contains(t, err.Error(), "2 residue(s) failed verification")
		assert.Contains(t, out.String(), "Result: FAILED [7 11]")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &rsaMocks.MockVerifyUseCase{}
		mockUseCase.On("Verify", ctx).Return(nil, context.Canceled)

		err := RunVerify(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}}, "text")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
