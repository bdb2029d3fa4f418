// SPDX-License-Identifier: MIT
package tomography

import "log/slog"

const panicLoggerNil = "tomography: WithLogger: logger must not be nil"

// Option configures a Reconstructor.
type Option func(*Reconstructor)

// WithLogger sets the structured logger; the default is slog.Default()
// tagged with component=tomography.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(r *Reconstructor) { r.log = l }
}
