// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvFrequency    = "MWTOMO_FREQUENCY"
	EnvSensorCount  = "MWTOMO_SENSOR_COUNT"
	EnvForwardGrids = "MWTOMO_FORWARD_GRIDS"
	EnvInverseGrids = "MWTOMO_INVERSE_GRIDS"
	EnvSelfLinks    = "MWTOMO_SELF_LINKS"
	EnvConvention   = "MWTOMO_CONVENTION"
	EnvWorkers      = "MWTOMO_WORKERS"
)

// ApplyEnv overrides cfg with MWTOMO_* values read from the given dotenv
// files and the process environment; the process environment wins. Missing
// files are skipped. The process environment itself is never modified.
// The returned Config is validated.
func ApplyEnv(cfg Config, files ...string) (Config, error) {
	vars := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup(EnvFrequency); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, invalidf("%s=%q: %v", EnvFrequency, v, err)
		}
		cfg.System.Frequency = f
	}
	for _, iv := range []struct {
		key string
		dst *int
	}{
		{EnvSensorCount, &cfg.Sensors.Count},
		{EnvForwardGrids, &cfg.DOI.ForwardGrids},
		{EnvInverseGrids, &cfg.DOI.InverseGrids},
		{EnvWorkers, &cfg.Forward.Workers},
	} {
		v, ok := lookup(iv.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, invalidf("%s=%q: %v", iv.key, v, err)
		}
		*iv.dst = n
	}
	if v, ok := lookup(EnvSelfLinks); ok {
		cfg.Forward.SelfLinks = v
	}
	if v, ok := lookup(EnvConvention); ok {
		cfg.Inverse.Convention = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
