// SPDX-License-Identifier: MIT
package tomography_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/forward"
	"github.com/katalvlaran/mwtomo/inverse"
	"github.com/katalvlaran/mwtomo/matrix"
	"github.com/katalvlaran/mwtomo/prior"
	"github.com/katalvlaran/mwtomo/tomography"
)

// scenario is a 300 MHz room with 8 transceivers and an 11×11 DOI grid.
func scenario() config.Config {
	cfg := config.Default()
	cfg.System.Frequency = 3e8
	cfg.Sensors.Count = 8
	cfg.DOI.ForwardGrids = 11
	cfg.DOI.InverseGrids = 11
	return cfg
}

// centredDisk returns an m×m map with permittivity eps inside a disk of the
// given radius around the DOI centre.
func centredDisk(t *testing.T, s *forward.Solver, radius float64, eps complex128) *matrix.CDense {
	t.Helper()
	g := s.Grid()
	out, err := matrix.NewCDenseFill(g.M, g.M, 1)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < g.M; i++ {
		for j = 0; j < g.M; j++ {
			if math.Hypot(g.X.At(i, j), g.Y.At(i, j)) <= radius {
				require.NoError(t, out.Set(i, j, eps))
			}
		}
	}
	return out
}

func TestNew_FailsFastOnNames(t *testing.T) {
	cfg := scenario()
	_, err := tomography.New(cfg, "born", "ridge", prior.Params{"alpha": 1})
	require.ErrorIs(t, err, inverse.ErrUnknownModel)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = tomography.New(cfg, "prytov", "total_variation", prior.Params{"alpha": 1})
	require.ErrorIs(t, err, prior.ErrUnknownPrior)

	cfg.Inverse.Convention = "absolute"
	_, err = tomography.New(cfg, "prytov", "ridge", prior.Params{"alpha": 1})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	assert.Contains(t, tomography.Models(), "prytov_complex")
	assert.Contains(t, tomography.Priors(), "qs2D")
	assert.Panics(t, func() { tomography.WithLogger(nil) })
}

func TestJacobian_CachedAndRetriedAfterCancel(t *testing.T) {
	r, err := tomography.New(scenario(), "prytov_complex", "ridge", prior.Params{"alpha": 1})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Jacobian(cancelled)
	require.ErrorIs(t, err, context.Canceled)

	a, err := r.Jacobian(context.Background())
	require.NoError(t, err)
	rows, cols := a.Dims()
	assert.Equal(t, 56, rows)
	assert.Equal(t, 2*121, cols)

	b, err := r.Jacobian(context.Background())
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestReconstruct_Errors(t *testing.T) {
	r, err := tomography.New(scenario(), "prytov", "ridge", prior.Params{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = r.Reconstruct(ctx, mat.NewDense(7, 8, nil), mat.NewDense(8, 8, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = r.Reconstruct(ctx, mat.NewDense(7, 8, nil), mat.NewDense(7, 8, nil))
	require.ErrorIs(t, err, prior.ErrMissingParam)
}

// A centred disk simulated by MoM must come back as a contrast peak at the
// centre cell, above the map mean. Contrast is ε − 1, so ε = 3 is the
// contrast-2 disk and ε = 2 the weaker contrast-1 one.
func TestReconstruct_EndToEndContrastTwoDisk(t *testing.T) {
	cfg := scenario()
	ctx := context.Background()

	solver, err := forward.New(cfg)
	require.NoError(t, err)
	fwd, err := solver.Solve(ctx, centredDisk(t, solver, 0.15, 3))
	require.NoError(t, err)
	require.Len(t, fwd.ObjectCells, 5)

	bg, err := inverse.NewBackground(cfg)
	require.NoError(t, err)
	a, err := inverse.Build(ctx, bg, inverse.Real)
	require.NoError(t, err)
	alpha := 1e-3 * mat.Trace(prior.Gram(a))

	r, err := tomography.New(cfg, "prytov", "ridge", prior.Params{"alpha": alpha})
	require.NoError(t, err)
	rec, err := r.Reconstruct(ctx, fwd.DirectPower, fwd.TotalPower)
	require.NoError(t, err)
	centre := rec.Real.At(5, 5)
	assert.Greater(t, centre, rec.Mean)
	assert.Greater(t, centre, 0.0)
}

func TestReconstruct_EndToEndCentredDisk(t *testing.T) {
	cfg := scenario()
	ctx := context.Background()

	solver, err := forward.New(cfg)
	require.NoError(t, err)
	scat := centredDisk(t, solver, 0.15, 2)
	fwd, err := solver.Solve(ctx, scat)
	require.NoError(t, err)
	require.Len(t, fwd.ObjectCells, 5)

	// Small α relative to the scale of AᵀA.
	bg, err := inverse.NewBackground(cfg)
	require.NoError(t, err)
	a, err := inverse.Build(ctx, bg, inverse.Real)
	require.NoError(t, err)
	alpha := 1e-3 * mat.Trace(prior.Gram(a))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := tomography.New(cfg, "prytov", "ridge", prior.Params{"alpha": alpha}, tomography.WithLogger(logger))
	require.NoError(t, err)

	rec, err := r.Reconstruct(ctx, fwd.DirectPower, fwd.TotalPower)
	require.NoError(t, err)
	require.Nil(t, rec.Imag)
	assert.NotEmpty(t, rec.RunID)
	assert.Equal(t, "ridge", rec.Prior)

	centre := rec.Real.At(5, 5)
	assert.Greater(t, centre, rec.Mean)
	assert.Greater(t, centre, 0.0)
	assert.Contains(t, logs.String(), "run_id="+rec.RunID)
	assert.Contains(t, logs.String(), "jacobian ready")

	// The permittivity convention only shifts the real map by one.
	cfg.Inverse.Convention = config.ConventionPermittivity
	rp, err := tomography.New(cfg, "prytov", "ridge", prior.Params{"alpha": alpha})
	require.NoError(t, err)
	perm, err := rp.Reconstruct(ctx, fwd.DirectPower, fwd.TotalPower)
	require.NoError(t, err)
	assert.InDelta(t, centre+1, perm.Real.At(5, 5), 1e-9)
	assert.NotEqual(t, rec.RunID, perm.RunID)
}
