// SPDX-License-Identifier: MIT
// Package: geodome/dome
//
// options.go — functional options for New.
//
// Contract:
//   • Options apply in order; later overrides earlier.
//   • Numeric values are checked by Config.Validate inside New and surface
//     as ErrConfiguration, since they usually come from user input.
//   • Values that can only be programmer error (nil logger, unknown
//     triangle method) panic in the constructor.

package dome

import (
	"github.com/sirupsen/logrus"
)

// Option customizes a Builder.
type Option func(*Builder)

// WithConfig replaces the whole parameter set; later options still apply.
func WithConfig(c Config) Option {
	return func(b *Builder) { b.cfg = c }
}

// WithRadius sets the circumradius R.
func WithRadius(R float64) Option {
	return func(b *Builder) { b.cfg.Radius = R }
}

// WithFrequency sets the subdivision frequency n.
func WithFrequency(n int) Option {
	return func(b *Builder) { b.cfg.Frequency = n }
}

// WithProjected selects spherical (true) or flat-faceted icosahedral output.
func WithProjected(on bool) Option {
	return func(b *Builder) { b.cfg.Projected = on }
}

// WithDome sets the dome-vs-sphere flag.
func WithDome(on bool) Option {
	return func(b *Builder) { b.cfg.Dome = on }
}

// WithCylindrical sets the cylindrical flag.
func WithCylindrical(on bool) Option {
	return func(b *Builder) { b.cfg.Cylindrical = on }
}

// WithCutPoint sets the cut-point fraction.
func WithCutPoint(f float64) Option {
	return func(b *Builder) { b.cfg.CutPoint = f }
}

// WithTolerance sets the dedup tolerance ε.
func WithTolerance(eps float64) Option {
	return func(b *Builder) { b.cfg.Tolerance = eps }
}

// WithPrecision sets the mantissa size of the seed arithmetic.
func WithPrecision(bits uint) Option {
	return func(b *Builder) { b.cfg.Precision = bits }
}

// WithTriangleMethod selects the reconstruction algorithm.
// Panics on an unknown method.
func WithTriangleMethod(m TriangleMethod) Option {
	if !m.Valid() {
		panic("dome: WithTriangleMethod(" + string(m) + ")")
	}
	return func(b *Builder) { b.cfg.Triangles = m }
}

// WithParallel subdivides on up to workers goroutines.
func WithParallel(workers int) Option {
	return func(b *Builder) { b.cfg.Parallel = workers }
}

// WithLogger sets the stage logger. Panics on nil.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("dome: WithLogger(nil)")
	}
	return func(b *Builder) { b.log = log }
}
