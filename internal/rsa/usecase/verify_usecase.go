package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"slices"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/rsatoy/internal/errors"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaService "github.com/allisson/rsatoy/internal/rsa/service"
)

// maxFailuresPerWorker caps how many failing residues each worker reports.
const maxFailuresPerWorker = 16

// verifyUseCase sweeps [0, n) in parallel. For every m it checks that
// encryption lands in [0, n), that decryption returns m, and that the engine
// agrees with the reference implementation; for m coprime to n it also checks
// m^(e*d) ≡ m (mod n).
type verifyUseCase struct {
	cipher    rsaService.UnitCipher
	engine    rsaService.Exponentiator
	reference rsaService.Exponentiator
	workers   int
	logger    *slog.Logger
}

type sweepResult struct {
	checked  uint64
	coprime  uint64
	failures []uint64
}

// Verify returns a report; a non-nil error means the sweep itself could not
// run, not that a residue failed.
func (v *verifyUseCase) Verify(ctx context.Context) (*rsaDomain.VerifyReport, error) {
	params := v.cipher.Params()

	workers := v.workers
	if uint64(workers) > params.N {
		workers = int(params.N)
	}
	chunk := (params.N + uint64(workers) - 1) / uint64(workers)
	// Rounding chunk up can leave trailing workers with nothing to sweep.
	workers = int((params.N + chunk - 1) / chunk)

	results := make([]sweepResult, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := min(lo+chunk, params.N)
		g.Go(func() error {
			res, err := v.sweep(gctx, params, lo, hi)
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(err, "verification sweep failed")
	}

	report := &rsaDomain.VerifyReport{
		Params:   params,
		Workers:  workers,
		Failures: []uint64{},
	}
	for _, res := range results {
		report.Checked += res.checked
		report.Coprime += res.coprime
		report.Failures = append(report.Failures, res.failures...)
	}
	slices.Sort(report.Failures)
	report.Consistent = len(report.Failures) == 0

	v.logger.Info("verification completed",
		slog.Uint64("n", params.N),
		slog.Uint64("checked", report.Checked),
		slog.Uint64("coprime", report.Coprime),
		slog.Int("failures", len(report.Failures)),
		slog.Int("workers", workers),
	)

	return report, nil
}

func (v *verifyUseCase) sweep(ctx context.Context, params rsaDomain.KeyParams, lo, hi uint64) (sweepResult, error) {
	var res sweepResult
	for m := lo; m < hi; m++ {
		if (m-lo)&0x3ff == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		ok, coprime, err := v.check(params, m)
		if err != nil {
			return res, fmt.Errorf("residue %d: %w", m, err)
		}
		res.checked++
		if coprime {
			res.coprime++
		}
		if !ok && len(res.failures) < maxFailuresPerWorker {
			res.failures = append(res.failures, m)
		}
	}
	return res, nil
}

func (v *verifyUseCase) check(params rsaDomain.KeyParams, m uint64) (ok, coprime bool, err error) {
	c, err := v.engine.ModExp(m, params.E, params.N)
	if err != nil {
		return false, false, err
	}
	ref, err := v.reference.ModExp(m, params.E, params.N)
	if err != nil {
		return false, false, err
	}
	if c != ref {
		v.logger.Warn("engine disagrees with reference",
			slog.Uint64("m", m), slog.Uint64("engine", c), slog.Uint64("reference", ref))
		return false, false, nil
	}
	if c >= params.N {
		return false, false, nil
	}

	back, err := v.cipher.DecryptValue(c)
	if err != nil {
		return false, false, err
	}
	if back != m {
		return false, false, nil
	}

	if gcd(m, params.N) != 1 {
		return true, false, nil
	}

	// m^(e*d) in one exponentiation when e*d fits in 64 bits.
	hiED, ed := bits.Mul64(params.E, params.D)
	if hiED != 0 {
		return true, true, nil
	}
	fermat, err := v.engine.ModExp(m, ed, params.N)
	if err != nil {
		return false, true, err
	}
	return fermat == m, true, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NewVerifyUseCase creates a VerifyUseCase running on the given number of
// workers (at least one).
func NewVerifyUseCase(
	cipher rsaService.UnitCipher,
	engine rsaService.Exponentiator,
	reference rsaService.Exponentiator,
	workers int,
	logger *slog.Logger,
) VerifyUseCase {
	if workers < 1 {
		workers = 1
	}
	return &verifyUseCase{
		cipher:    cipher,
		engine:    engine,
		reference: reference,
		workers:   workers,
		logger:    logger,
	}
}
