// SPDX-License-Identifier: MIT

// Package config holds the explicit configuration consumed by every stage of
// the tomography pipeline. A Config value is built once (Default, Load,
// ApplyEnv), validated, and passed by value into the geometry provider, the
// forward solver, the sensitivity model and the orchestrator. Nothing in the
// module reads sensor or grid values from global state.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is the configuration error kind. Unknown names, malformed
// parameter bags and out-of-range settings all wrap it; such errors are
// non-recoverable and surfaced unchanged.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Physical constants shared by the forward and inverse stages.
const (
	// SpeedOfLight in m/s (rounded, matches the calibration tables).
	SpeedOfLight = 3e8
)

// Geometry, origin and policy names accepted in configuration files.
const (
	GeometrySquare = "square"
	GeometryCircle = "circle"

	OriginCenter = "center"
	OriginCorner = "corner"

	// SelfLinksRemove drops tx==rx entries and reshapes each column to N−1 receivers.
	SelfLinksRemove = "remove"
	// SelfLinksZero keeps N×N fields and zero-fills the tx==rx entries.
	SelfLinksZero = "zero"

	// ConventionContrast returns the raw contrast map χ.
	ConventionContrast = "contrast"
	// ConventionPermittivity returns 1 + Re(χ) (legacy absolute permittivity estimate).
	ConventionPermittivity = "permittivity"
)

// System holds the excitation parameters.
type System struct {
	Frequency float64 `yaml:"frequency"` // Hz
}

// Room describes the region whose boundary carries the sensors.
type Room struct {
	Geometry string  `yaml:"geometry"` // square | circle
	Length   float64 `yaml:"length"`   // m (diameter for circle)
	Width    float64 `yaml:"width"`    // m
	Origin   string  `yaml:"origin"`   // center | corner
}

// DOI describes the domain of interest and its two discretizations.
type DOI struct {
	Geometry     string  `yaml:"geometry"` // square
	Length       float64 `yaml:"length"`   // m, x extent
	Width        float64 `yaml:"width"`    // m, y extent
	Origin       string  `yaml:"origin"`   // center | corner
	ForwardGrids int     `yaml:"forward_grids"`
	InverseGrids int     `yaml:"inverse_grids"`
}

// Sensors describes the transceiver ring.
type Sensors struct {
	Count        int  `yaml:"count"`
	Transceivers bool `yaml:"transceivers"`
}

// Forward holds forward-solver policy.
type Forward struct {
	SelfLinks string `yaml:"self_links"` // remove | zero
	Workers   int    `yaml:"workers"`    // 0 = runtime.GOMAXPROCS
}

// Inverse holds reconstruction policy.
type Inverse struct {
	Convention string `yaml:"convention"` // contrast | permittivity
}

// Config is the complete configuration of one tomography setup.
type Config struct {
	System  System  `yaml:"system"`
	Room    Room    `yaml:"room"`
	DOI     DOI     `yaml:"doi"`
	Sensors Sensors `yaml:"sensors"`
	Forward Forward `yaml:"forward"`
	Inverse Inverse `yaml:"inverse"`
}

// Default returns the reference setup: 2.4 GHz, a 3 m square room with 40
// transceivers on its perimeter, and a centred 1.5 m DOI discretized 200×200
// (forward) and 50×50 (inverse).
func Default() Config {
	return Config{
		System: System{Frequency: 2.4e9},
		Room: Room{
			Geometry: GeometrySquare,
			Length:   3,
			Width:    3,
			Origin:   OriginCenter,
		},
		DOI: DOI{
			Geometry:     GeometrySquare,
			Length:       1.5,
			Width:        1.5,
			Origin:       OriginCenter,
			ForwardGrids: 200,
			InverseGrids: 50,
		},
		Sensors: Sensors{Count: 40, Transceivers: true},
		Forward: Forward{SelfLinks: SelfLinksRemove},
		Inverse: Inverse{Convention: ConventionContrast},
	}
}

// Wavelength returns λ = c/f in metres.
func (c Config) Wavelength() float64 { return SpeedOfLight / c.System.Frequency }

// WaveNumber returns k = 2π/λ in rad/m.
func (c Config) WaveNumber() float64 { return 2 * math.Pi / c.Wavelength() }

// invalidf builds a configuration error that matches ErrInvalidConfig.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks every field and returns the first violation, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if !(c.System.Frequency > 0) || math.IsInf(c.System.Frequency, 0) {
		return invalidf("system.frequency must be positive and finite, got %g", c.System.Frequency)
	}

	switch c.Room.Geometry {
	case GeometrySquare, GeometryCircle:
	default:
		return invalidf("room.geometry %q unsupported", c.Room.Geometry)
	}
	if !(c.Room.Length > 0) || !(c.Room.Width > 0) {
		return invalidf("room dimensions must be positive, got %gx%g", c.Room.Length, c.Room.Width)
	}
	if err := validateOrigin("room", c.Room.Origin); err != nil {
		return err
	}

	if c.DOI.Geometry != GeometrySquare {
		return invalidf("doi.geometry %q unsupported", c.DOI.Geometry)
	}
	if !(c.DOI.Length > 0) || !(c.DOI.Width > 0) {
		return invalidf("doi dimensions must be positive, got %gx%g", c.DOI.Length, c.DOI.Width)
	}
	if err := validateOrigin("doi", c.DOI.Origin); err != nil {
		return err
	}
	if c.DOI.ForwardGrids <= 0 || c.DOI.InverseGrids <= 0 {
		return invalidf("doi grids must be positive, got forward=%d inverse=%d",
			c.DOI.ForwardGrids, c.DOI.InverseGrids)
	}

	if c.Sensors.Count < 2 {
		return invalidf("sensors.count must be at least 2, got %d", c.Sensors.Count)
	}

	switch c.Forward.SelfLinks {
	case SelfLinksRemove:
		if !c.Sensors.Transceivers {
			return invalidf("forward.self_links=%q requires transceiver mode", SelfLinksRemove)
		}
	case SelfLinksZero:
	default:
		return invalidf("forward.self_links %q unsupported", c.Forward.SelfLinks)
	}
	if c.Forward.Workers < 0 {
		return invalidf("forward.workers must be non-negative, got %d", c.Forward.Workers)
	}

	switch c.Inverse.Convention {
	case ConventionContrast, ConventionPermittivity:
	default:
		return invalidf("inverse.convention %q unsupported", c.Inverse.Convention)
	}

	return nil
}

func validateOrigin(section, origin string) error {
	switch origin {
	case OriginCenter, OriginCorner:
		return nil
	default:
		return invalidf("%s.origin %q unsupported", section, origin)
	}
}
