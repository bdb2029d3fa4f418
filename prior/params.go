// SPDX-License-Identifier: MIT
package prior

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Params is the parameter bag of a prior. Boolean switches use 0 / 1.
type Params map[string]float64

// Get returns a required parameter or ErrMissingParam.
func (p Params) Get(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%q (have %s): %w", key, p.keys(), ErrMissingParam)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s=%g: %w", key, v, ErrBadParam)
	}

	return v, nil
}

// GetOr returns p[key] when present and def otherwise.
func (p Params) GetOr(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}

	return def
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Bool reads a 0/1 switch with a default.
func (p Params) Bool(key string, def bool) bool {
	v, ok := p[key]
	if !ok {
		return def
	}

	return v != 0
}

func (p Params) keys() string {
	ks := make([]string, 0, len(p))
	for k := range p {
		ks = append(ks, k)
	}
	sort.Strings(ks)

	return "[" + strings.Join(ks, ",") + "]"
}

// unit reads a required parameter constrained to [0, 1].
func (p Params) unit(key string) (float64, error) {
	v, err := p.Get(key)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%s=%g not in [0,1]: %w", key, v, ErrBadParam)
	}

	return v, nil
}

// nonNegative reads a required parameter constrained to [0, ∞).
func (p Params) nonNegative(key string) (float64, error) {
	v, err := p.Get(key)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s=%g must be non-negative: %w", key, v, ErrBadParam)
	}

	return v, nil
}

// integer reads an optional whole-number parameter, def when absent.
func (p Params) integer(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s=%g must be an integer: %w", key, v, ErrBadParam)
	}

	return int(v), nil
}
