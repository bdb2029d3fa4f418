// SPDX-License-Identifier: MIT
package forward

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/matrix"
)

var (
	// ErrScattererShape indicates a permittivity map whose shape differs from the forward grid.
	ErrScattererShape = fmt.Errorf("forward: scatterer shape: %w", matrix.ErrDimensionMismatch)

	// ErrSelfLinkPolicy indicates an unknown self-link policy name.
	ErrSelfLinkPolicy = fmt.Errorf("forward: self-link policy: %w", config.ErrInvalidConfig)

	// ErrNilScatterer indicates a nil permittivity map.
	ErrNilScatterer = errors.New("forward: nil scatterer")
)

// forwardErrorf tags err with the failing stage.
func forwardErrorf(stage string, err error) error {
	return fmt.Errorf("forward: %s: %w", stage, err)
}
