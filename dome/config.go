// SPDX-License-Identifier: MIT
// Package: geodome/dome
//
// config.go — run configuration and deterministic defaults.
//
// Defaults:
//   • Radius      = 2
//   • Frequency   = 2
//   • Projected   = true   (spherical dome, not flat-faceted icosahedral)
//   • Dome        = true
//   • Cylindrical = false
//   • CutPoint    = 0.8
//   • Tolerance   = geom.DefaultTolerance (1e-4)
//   • Precision   = icosa.DefaultPrecision (128 bits)
//   • Triangles   = TrianglesExhaustive
//   • Parallel    = 1 (sequential subdivision)

package dome

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodome/geom"
	"github.com/katalvlaran/geodome/icosa"
)

// TriangleMethod selects the triangle reconstruction algorithm.
type TriangleMethod string

const (
	// TrianglesExhaustive searches the hub graph for every closed triangle.
	TrianglesExhaustive TriangleMethod = "exhaustive"
	// TrianglesLattice derives triangles from the subdivision lattices.
	TrianglesLattice TriangleMethod = "lattice"
)

// Valid reports whether m names a known method.
func (m TriangleMethod) Valid() bool {
	return m == TrianglesExhaustive || m == TrianglesLattice
}

const (
	defaultRadius    = 2.0
	defaultFrequency = 2
	defaultCutPoint  = 0.8
	defaultParallel  = 1
	minPrecision     = 53
)

// Config is the parameter set of one run.
type Config struct {
	Radius    float64
	Frequency int
	Projected bool

	// Accepted and validated; the geometry does not branch on them.
	Dome        bool
	Cylindrical bool
	CutPoint    float64

	Tolerance float64
	Precision uint
	Triangles TriangleMethod
	Parallel  int
}

// DefaultConfig returns the default parameter set.
func DefaultConfig() Config {
	return Config{
		Radius:      defaultRadius,
		Frequency:   defaultFrequency,
		Projected:   true,
		Dome:        true,
		Cylindrical: false,
		CutPoint:    defaultCutPoint,
		Tolerance:   geom.DefaultTolerance,
		Precision:   icosa.DefaultPrecision,
		Triangles:   TrianglesExhaustive,
		Parallel:    defaultParallel,
	}
}

// Validate returns an ErrConfiguration-wrapped error for the first invalid
// field, in field order.
func (c Config) Validate() error {
	switch {
	case !finite(c.Radius) || c.Radius <= 0:
		return configErr("radius %v must be finite and > 0", c.Radius)
	case c.Frequency < 1:
		return configErr("frequency %d must be >= 1", c.Frequency)
	case !finite(c.CutPoint) || c.CutPoint <= 0 || c.CutPoint > 1:
		return configErr("cut point %v must be in (0,1]", c.CutPoint)
	case !finite(c.Tolerance) || c.Tolerance <= 0:
		return configErr("tolerance %v must be finite and > 0", c.Tolerance)
	case c.Precision < minPrecision:
		return configErr("precision %d must be >= %d bits", c.Precision, minPrecision)
	case !c.Triangles.Valid():
		return configErr("unknown triangle method %q", c.Triangles)
	case c.Parallel < 1:
		return configErr("parallel %d must be >= 1", c.Parallel)
	}

	// Distinct lattice points are at least one sub-edge apart; per-axis
	// equality can merge points up to ε√3 apart.
	if step := BaseEdge(c.Radius) / float64(c.Frequency); step <= 2*c.Tolerance {
		return configErr("tolerance %v too coarse for sub-edge %v", c.Tolerance, step)
	}

	return nil
}

// BaseEdge returns the edge length of the icosahedron with circumradius R.
func BaseEdge(R float64) float64 {
	return R / math.Sin(2*math.Pi/5)
}

func configErr(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", methodNew, fmt.Sprintf(format, args...), ErrConfiguration)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
