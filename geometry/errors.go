// SPDX-License-Identifier: MIT
package geometry

import (
	"fmt"

	"github.com/katalvlaran/mwtomo/config"
)

// Sentinel errors. All of them are configuration errors.
var (
	// ErrUnsupportedGeometry is returned for a room or DOI shape outside {square, circle}.
	ErrUnsupportedGeometry = fmt.Errorf("geometry: unsupported geometry: %w", config.ErrInvalidConfig)

	// ErrUnsupportedOrigin is returned for an origin outside {center, corner}.
	ErrUnsupportedOrigin = fmt.Errorf("geometry: unsupported origin: %w", config.ErrInvalidConfig)

	// ErrUnknownProblem is returned for a problem name other than forward or inverse.
	ErrUnknownProblem = fmt.Errorf("geometry: unknown problem: %w", config.ErrInvalidConfig)

	// ErrBadCount is returned for non-positive grid or sensor counts.
	ErrBadCount = fmt.Errorf("geometry: count must be positive: %w", config.ErrInvalidConfig)
)
