// SPDX-License-Identifier: MIT
package forward

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/em"
	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/matrix"
)

// Result holds the outputs of one forward run. Field and power matrices are
// [receiver, transmitter], compact (N−1)×N under the "remove" self-link
// policy and N×N under "zero".
type Result struct {
	Direct      *matrix.CDense
	Scattered   *matrix.CDense
	Total       *matrix.CDense
	DirectPower *mat.Dense
	TotalPower  *mat.Dense

	// ObjectCells are the column-major indices of cells with ε ≠ 1.
	ObjectCells []int
}

// Solver is a MoM forward solver bound to one configuration.
// It is safe for concurrent use; each Solve call allocates its own outputs.
type Solver struct {
	geo     *geometry.Provider
	grid    *geometry.Grid
	cells   []geometry.Point
	wave    em.Wave
	policy  string
	workers int
	log     *slog.Logger
	luOpts  []matrix.Option

	c1, c2 float64    // −η·π·r/2 and J1(k·r)
	c3     complex128 // H1(k·r)

	bgOnce      sync.Once
	bgErr       error
	rawDirect   *matrix.CDense // N×N, singular diagonal
	incident    *matrix.CDense // cells×N
	direct      *matrix.CDense // after self-link policy
	directPower *mat.Dense
}

// New validates cfg, builds the forward grid and returns a Solver.
//
// Errors:
//   - config.ErrInvalidConfig for any invalid configuration field.
func New(cfg config.Config, opts ...Option) (*Solver, error) {
	geo, err := geometry.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	grid, err := geo.Grid(geometry.Forward)
	if err != nil {
		return nil, err
	}

	wave := em.NewWave(cfg)
	kr := wave.K * grid.Radius
	s := &Solver{
		geo:     geo,
		grid:    grid,
		cells:   grid.Cells(),
		wave:    wave,
		policy:  cfg.Forward.SelfLinks,
		workers: cfg.Forward.Workers,
		log:     slog.Default().With(slog.String("component", "forward")),
		c1:      -em.Impedance * math.Pi * grid.Radius / 2,
		c2:      em.BesselJ1(kr),
		c3:      em.Hankel1(kr),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.workers == 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}

	return s, nil
}

// Grid returns the forward grid.
func (s *Solver) Grid() *geometry.Grid { return s.grid }

// Wave returns the excitation constants.
func (s *Solver) Wave() em.Wave { return s.wave }

// Background returns the scatterer-independent direct field and power after
// the self-link policy. Both are computed once and shared; callers must not
// modify them.
func (s *Solver) Background(ctx context.Context) (*matrix.CDense, *mat.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.bgOnce.Do(s.buildBackground)

	return s.direct, s.directPower, s.bgErr
}

func (s *Solver) buildBackground() {
	start := time.Now()
	sensors := s.geo.Sensors()
	s.rawDirect = em.DirectField(s.wave, sensors)
	s.incident = em.IncidentField(s.wave, sensors, s.cells)
	s.direct, s.bgErr = ApplySelfLinks(s.rawDirect, s.policy)
	if s.bgErr != nil {
		return
	}
	s.directPower = em.Power(s.direct, s.wave.Wavelength)
	s.log.Debug("background fields ready",
		slog.Int("sensors", len(sensors)),
		slog.Int("cells", len(s.cells)),
		slog.Duration("duration", time.Since(start)))
}

// ObjectCells returns, in column-major order, the indices of the cells whose
// permittivity differs from 1.
func ObjectCells(scatterer *matrix.CDense) []int {
	flat := geometry.FlattenComplex(scatterer)
	out := make([]int, 0, len(flat))
	for p, v := range flat {
		if v != 1 {
			out = append(out, p)
		}
	}

	return out
}

// Solve runs the forward model on a forward-grid permittivity map.
//
// Implementation:
//   - Stage 1: validate the map shape and fetch the cached background fields.
//   - Stage 2: select object cells; an empty set short-circuits to a zero
//     scattered field.
//   - Stage 3: assemble Z, solve Z·J = −E_inc[objects] with pivoted LU.
//   - Stage 4: propagate J to the sensors, add the direct field, apply the
//     self-link policy and convert to power.
//
// Errors:
//   - ErrNilScatterer, ErrScattererShape (matrix.ErrDimensionMismatch).
//   - matrix.ErrSingular / matrix.ErrNaNInf (numerical kind) from the current solve.
//   - ctx.Err() when cancelled between stages or inside worker shards.
//
// Complexity:
//   - Time O(K³ + K²·N + K·N²) for K object cells and N sensors; Space O(K² + K·N).
func (s *Solver) Solve(ctx context.Context, scatterer *matrix.CDense) (*Result, error) {
	if scatterer == nil {
		return nil, ErrNilScatterer
	}
	if r, c := scatterer.Dims(); r != s.grid.M || c != s.grid.M {
		return nil, fmt.Errorf("got %dx%d, grid is %dx%d: %w", r, c, s.grid.M, s.grid.M, ErrScattererShape)
	}
	if _, _, err := s.Background(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	objects := ObjectCells(scatterer)
	flat := geometry.FlattenComplex(scatterer)
	eps := make([]complex128, len(objects))
	for q, p := range objects {
		eps[q] = flat[p]
	}

	n := len(s.geo.Sensors())
	scattered, err := matrix.NewCDense(n, n)
	if err != nil {
		return nil, forwardErrorf("scattered field", err)
	}
	if len(objects) > 0 {
		current, err := s.InducedCurrent(ctx, objects, eps)
		if err != nil {
			return nil, err
		}
		if scattered, err = s.scatter(ctx, objects, current); err != nil {
			return nil, err
		}
	}

	total, err := matrix.Add(s.rawDirect, scattered)
	if err != nil {
		return nil, forwardErrorf("total field", err)
	}
	res := &Result{Direct: s.direct.Clone(), DirectPower: mat.DenseCopyOf(s.directPower), ObjectCells: objects}
	if res.Scattered, err = ApplySelfLinks(scattered, s.policy); err != nil {
		return nil, err
	}
	if res.Total, err = ApplySelfLinks(total, s.policy); err != nil {
		return nil, err
	}
	res.TotalPower = em.Power(res.Total, s.wave.Wavelength)

	s.log.Debug("forward solve done",
		slog.Int("object_cells", len(objects)),
		slog.Int("workers", s.workers),
		slog.Duration("duration", time.Since(start)))

	return res, nil
}

// Impedance assembles the K×K MoM matrix over the object cells:
//
//	Z[p,q] = C1·C2·H0(k·|c_p − c_q|),  p ≠ q
//	Z[p,p] = C1·H1(k·r) − i·η·ε_p / (k·(ε_p − 1))
//
// with C1 = −η·π·r/2 and C2 = J1(k·r). Rows are sharded over the worker pool.
func (s *Solver) Impedance(ctx context.Context, objects []int, eps []complex128) (*matrix.CDense, error) {
	k := len(objects)
	if k != len(eps) {
		return nil, forwardErrorf("impedance", matrix.ErrDimensionMismatch)
	}
	z, err := matrix.NewCDense(k, k)
	if err != nil {
		return nil, forwardErrorf("impedance", err)
	}
	coupling := complex(s.c1*s.c2, 0)
	self := complex(s.c1, 0) * s.c3
	err = parallelRows(ctx, k, s.workers, func(p int) {
		row := z.RawRowView(p)
		cp := s.cells[objects[p]]
		for q := 0; q < k; q++ {
			if q == p {
				continue
			}
			row[q] = coupling * em.Hankel0(s.wave.K*cp.Dist(s.cells[objects[q]]))
		}
		row[p] = self - 1i*complex(em.Impedance, 0)*eps[p]/(complex(s.wave.K, 0)*(eps[p]-1))
	})
	if err != nil {
		return nil, err
	}

	return z, nil
}

// InducedCurrent solves Z·J = −E_inc[objects, :] and returns the K×N current.
func (s *Solver) InducedCurrent(ctx context.Context, objects []int, eps []complex128) (*matrix.CDense, error) {
	if _, _, err := s.Background(ctx); err != nil {
		return nil, err
	}
	z, err := s.Impedance(ctx, objects, eps)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	n := s.incident.Cols()
	rhs, err := matrix.NewCDense(len(objects), n)
	if err != nil {
		return nil, forwardErrorf("induced current", err)
	}
	for q, p := range objects {
		src, dst := s.incident.RawRowView(p), rhs.RawRowView(q)
		for tx := range dst {
			dst[tx] = -src[tx]
		}
	}
	current, err := matrix.Solve(z, rhs, s.luOpts...)
	if err != nil {
		return nil, forwardErrorf("induced current", err)
	}

	return current, nil
}

// Propagator assembles the N×K matrix Z_prop[s,q] = C1·C2·H0(k·|s − c_q|)
// mapping object-cell currents to the sensors. Rows are sharded over the
// worker pool.
func (s *Solver) Propagator(ctx context.Context, objects []int) (*matrix.CDense, error) {
	sensors := s.geo.Sensors()
	zp, err := matrix.NewCDense(len(sensors), len(objects))
	if err != nil {
		return nil, forwardErrorf("propagator", err)
	}
	coupling := complex(s.c1*s.c2, 0)
	err = parallelRows(ctx, len(sensors), s.workers, func(i int) {
		row := zp.RawRowView(i)
		for q, p := range objects {
			row[q] = coupling * em.Hankel0(s.wave.K*sensors[i].Dist(s.cells[p]))
		}
	})
	if err != nil {
		return nil, err
	}

	return zp, nil
}

// scatter returns E_s = Z_prop·J, an N×N [receiver, transmitter] field.
func (s *Solver) scatter(ctx context.Context, objects []int, current *matrix.CDense) (*matrix.CDense, error) {
	zp, err := s.Propagator(ctx, objects)
	if err != nil {
		return nil, err
	}
	es, err := matrix.Mul(zp, current)
	if err != nil {
		return nil, forwardErrorf("scattered field", err)
	}

	return es, nil
}
