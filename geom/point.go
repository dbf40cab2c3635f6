// SPDX-License-Identifier: MIT
// Package: geodome/geom
//
// point.go — Point identity, coordinates and tolerance equality.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTolerance is the per-axis distance below which two coordinates are
// considered the same vertex (length units of the configured radius).
const DefaultTolerance = 1e-4

// PointID identifies a Point for the whole run. Zero is never assigned.
type PointID int

// Point is an immutable 3D coordinate with a stable identity.
type Point struct {
	ID  PointID
	Pos r3.Vec
}

// NewPoint returns a Point with the given identity and coordinates.
func NewPoint(id PointID, x, y, z float64) Point {
	return Point{ID: id, Pos: r3.Vec{X: x, Y: y, Z: z}}
}

// XYZ returns the coordinates as a plain triple.
func (p Point) XYZ() (x, y, z float64) {
	return p.Pos.X, p.Pos.Y, p.Pos.Z
}

// Radius returns the distance of p from the origin.
func (p Point) Radius() float64 {
	return r3.Norm(p.Pos)
}

// Finite reports whether every coordinate of p is a finite number.
func (p Point) Finite() bool {
	return finite(p.Pos.X) && finite(p.Pos.Y) && finite(p.Pos.Z)
}

// Equal reports whether a and b agree on every axis within eps.
// Comparison is numeric; coordinates are never formatted for this test.
func Equal(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a.Pos, b.Pos))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
