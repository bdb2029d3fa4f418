// SPDX-License-Identifier: MIT
package inverse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mwtomo/config"
)

// ErrUnknownModel is returned for a model name outside the registered variants.
var ErrUnknownModel = fmt.Errorf("inverse: unknown model: %w", config.ErrInvalidConfig)

// Variant selects how the complex kernel becomes a real Jacobian.
type Variant int

const (
	// Real keeps Re(q): one m² block.
	Real Variant = iota
	// ComplexSplit keeps [Re(q) | −Im(q)]: two m² blocks (real then imaginary contrast).
	ComplexSplit
	// Imag keeps −Im(q): one m² block.
	Imag
)

var variantNames = map[string]Variant{
	"prytov":         Real,
	"prytov_complex": ComplexSplit,
	"prytov_imag":    Imag,
}

// ParseVariant maps a model name to its Variant.
func ParseVariant(name string) (Variant, error) {
	v, ok := variantNames[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownModel)
	}

	return v, nil
}

// Names lists the registered model names in lexical order.
func Names() []string {
	out := make([]string, 0, len(variantNames))
	for name := range variantNames {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// String returns the model name of v.
func (v Variant) String() string {
	for name, vv := range variantNames {
		if vv == v {
			return name
		}
	}

	return fmt.Sprintf("Variant(%d)", int(v))
}

// Blocks returns the number of m² column blocks of the Jacobian.
func (v Variant) Blocks() int {
	if v == ComplexSplit {
		return 2
	}

	return 1
}
