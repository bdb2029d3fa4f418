// SPDX-License-Identifier: MIT
package tomography

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/inverse"
	"github.com/katalvlaran/mwtomo/prior"
)

// Models lists the sensitivity model names accepted by New.
func Models() []string { return inverse.Names() }

// Priors lists the prior names accepted by New.
func Priors() []string { return prior.Names() }

// Reconstruction is the outcome of one Reconstruct call.
type Reconstruction struct {
	*prior.Result

	RunID string
	Model string
	Prior string

	// Mean and StdDev summarize the real map.
	Mean, StdDev float64
}

// Reconstructor binds a model and a prior to one configuration.
// It is safe for concurrent use.
type Reconstructor struct {
	cfg       config.Config
	geo       *geometry.Provider
	variant   inverse.Variant
	modelName string
	priorName string
	prior     prior.Func
	params    prior.Params
	log       *slog.Logger

	mu   sync.Mutex
	jac  *mat.Dense
	gram *mat.SymDense
}

// New validates cfg, the model name and the prior name.
//
// Errors:
//   - config.ErrInvalidConfig (including inverse.ErrUnknownModel and
//     prior.ErrUnknownPrior). No numerical work happens before these checks.
func New(cfg config.Config, model, priorName string, params prior.Params, opts ...Option) (*Reconstructor, error) {
	geo, err := geometry.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	variant, err := inverse.ParseVariant(model)
	if err != nil {
		return nil, err
	}
	fn, err := prior.Lookup(priorName)
	if err != nil {
		return nil, err
	}
	cp := make(prior.Params, len(params))
	for k, v := range params {
		cp[k] = v
	}

	r := &Reconstructor{
		cfg:       cfg,
		geo:       geo,
		variant:   variant,
		modelName: model,
		priorName: priorName,
		prior:     fn,
		params:    cp,
		log:       slog.Default().With(slog.String("component", "tomography")),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r, nil
}

// Jacobian returns the cached sensitivity matrix, building it on first use.
// A failed or cancelled build is not cached.
func (r *Reconstructor) Jacobian(ctx context.Context) (*mat.Dense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.jac != nil {
		return r.jac, nil
	}

	start := time.Now()
	bg, err := inverse.NewBackgroundFrom(r.geo)
	if err != nil {
		return nil, err
	}
	jac, err := inverse.Build(ctx, bg, r.variant)
	if err != nil {
		return nil, err
	}
	if prior.UsesGram(r.priorName) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		r.gram = prior.Gram(jac)
	}
	r.jac = jac
	rows, cols := jac.Dims()
	r.log.Debug("jacobian ready",
		slog.String("model", r.modelName),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Duration("duration", time.Since(start)))

	return r.jac, nil
}

// Reconstruct inverts measured power into a contrast map.
//
// Implementation:
//   - Stage 1: fetch (or build) the Jacobian.
//   - Stage 2: form the data vector (P_t − P_d)/(10·log10(e²)) in link order.
//   - Stage 3: run the prior with the configured output convention.
//
// Errors:
//   - matrix.ErrDimensionMismatch when the power matrices do not fit the sensor count.
//   - config.ErrInvalidConfig for missing or invalid prior parameters.
//   - matrix.ErrNumerical for singular or non-finite solves.
//   - ctx.Err() on cancellation.
func (r *Reconstructor) Reconstruct(ctx context.Context, directPower, totalPower mat.Matrix) (*Reconstruction, error) {
	runID := uuid.New().String()
	log := r.log.With(slog.String("run_id", runID))
	start := time.Now()

	jac, err := r.Jacobian(ctx)
	if err != nil {
		return nil, fmt.Errorf("tomography: run %s: %w", runID, err)
	}
	data, err := inverse.Data(r.geo.Links(), r.cfg.Sensors.Count, totalPower, directPower)
	if err != nil {
		return nil, fmt.Errorf("tomography: run %s: %w", runID, err)
	}

	r.mu.Lock()
	gram := r.gram
	r.mu.Unlock()
	res, err := r.prior(ctx, prior.Problem{
		A:          jac,
		Data:       data,
		M:          r.cfg.DOI.InverseGrids,
		Convention: r.cfg.Inverse.Convention,
		Gram:       gram,
	}, r.params)
	if err != nil {
		return nil, fmt.Errorf("tomography: run %s: prior %s: %w", runID, r.priorName, err)
	}

	out := &Reconstruction{Result: res, RunID: runID, Model: r.modelName, Prior: r.priorName}
	out.Mean, out.StdDev = stat.MeanStdDev(geometry.Flatten(res.Real), nil)
	if !res.Converged {
		log.Warn("prior did not converge",
			slog.String("prior", r.priorName),
			slog.Int("iterations", res.Iterations))
	}
	log.Info("reconstruction done",
		slog.String("model", r.modelName),
		slog.String("prior", r.priorName),
		slog.Float64("mean", out.Mean),
		slog.Float64("std", out.StdDev),
		slog.Duration("duration", time.Since(start)))

	return out, nil
}
