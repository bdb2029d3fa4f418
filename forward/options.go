// SPDX-License-Identifier: MIT
package forward

import (
	"log/slog"

	"github.com/katalvlaran/mwtomo/matrix"
)

const (
	panicWorkersNegative = "forward: WithWorkers: n must be non-negative"
	panicLoggerNil       = "forward: WithLogger: logger must not be nil"
)

// Option configures a Solver. Constructors panic only on nonsensical values.
type Option func(*Solver)

// WithWorkers bounds the goroutines used for impedance and scattered-field
// rows. 0 means runtime.GOMAXPROCS(0). Overrides config.Forward.Workers.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(s *Solver) { s.workers = n }
}

// WithLogger sets the structured logger; the default is slog.Default()
// tagged with component=forward.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(s *Solver) { s.log = l }
}

// WithLUOptions forwards numeric policy options to the induced-current solve.
func WithLUOptions(opts ...matrix.Option) Option {
	return func(s *Solver) { s.luOpts = append(s.luOpts, opts...) }
}
