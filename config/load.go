// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file and overlays it on Default().
// Fields absent from the file keep their default values. The result is
// validated before it is returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read tomography config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over Default() and validates the result.
// Unknown keys are rejected so that typos surface as configuration errors.
// An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parse yaml: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
