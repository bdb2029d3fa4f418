// SPDX-License-Identifier: MIT
package prior

import (
	"fmt"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/matrix"
)

var (
	// ErrUnknownPrior is returned by Lookup for unregistered names.
	ErrUnknownPrior = fmt.Errorf("prior: unknown prior: %w", config.ErrInvalidConfig)

	// ErrMissingParam is returned when a required parameter is absent.
	ErrMissingParam = fmt.Errorf("prior: missing parameter: %w", config.ErrInvalidConfig)

	// ErrBadParam is returned for a parameter outside its domain.
	ErrBadParam = fmt.Errorf("prior: bad parameter: %w", config.ErrInvalidConfig)

	// ErrUnknownDirection is returned by DifferenceOperator for directions
	// other than "horizontal" and "vertical".
	ErrUnknownDirection = fmt.Errorf("prior: unknown difference direction: %w", config.ErrInvalidConfig)

	// ErrUnknownOrder is returned by DifferenceOperator for orders other than 1 and 2.
	ErrUnknownOrder = fmt.Errorf("prior: unknown difference order: %w", config.ErrInvalidConfig)

	// ErrShape is returned when the Jacobian, the data vector and the grid size disagree.
	ErrShape = fmt.Errorf("prior: shape: %w", matrix.ErrDimensionMismatch)
)
