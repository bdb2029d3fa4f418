// SPDX-License-Identifier: MIT
package geometry

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/mwtomo/config"
)

// Problem selects one of the two discretizations of the DOI.
type Problem int

const (
	// Forward is the fine grid used to synthesize fields.
	Forward Problem = iota
	// Inverse is the coarse grid on which contrast is reconstructed.
	Inverse
)

// String implements fmt.Stringer.
func (p Problem) String() string {
	switch p {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Problem(%d)", int(p))
	}
}

// ParseProblem maps "forward" / "inverse" to a Problem.
func ParseProblem(s string) (Problem, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "inverse":
		return Inverse, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownProblem)
	}
}

// Provider owns the derived geometry of one configuration. Sensor positions
// and links are computed eagerly; grids are built on first use and cached.
// A Provider is safe for concurrent use.
type Provider struct {
	cfg     config.Config
	sensors []Point
	links   []Link

	once  [2]sync.Once
	grids [2]*Grid
	errs  [2]error
}

// NewProvider validates cfg and computes the sensor array and link set.
func NewProvider(cfg config.Config) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sensors, err := SensorPositions(cfg.Room, cfg.Sensors.Count)
	if err != nil {
		return nil, err
	}

	return &Provider{
		cfg:     cfg,
		sensors: sensors,
		links:   SensorLinks(cfg.Sensors.Count, cfg.Sensors.Transceivers),
	}, nil
}

// Config returns the configuration the provider was built from.
func (p *Provider) Config() config.Config { return p.cfg }

// Sensors returns the sensor array. Callers must not modify it.
func (p *Provider) Sensors() []Point { return p.sensors }

// Links returns the ordered link set. Callers must not modify it.
func (p *Provider) Links() []Link { return p.links }

// Grid returns the cached centroid lattice for problem.
func (p *Provider) Grid(problem Problem) (*Grid, error) {
	var m int
	switch problem {
	case Forward:
		m = p.cfg.DOI.ForwardGrids
	case Inverse:
		m = p.cfg.DOI.InverseGrids
	default:
		return nil, fmt.Errorf("%v: %w", problem, ErrUnknownProblem)
	}
	p.once[problem].Do(func() {
		p.grids[problem], p.errs[problem] = NewGrid(p.cfg.DOI, m)
	})

	return p.grids[problem], p.errs[problem]
}
