// SPDX-License-Identifier: MIT
// Package: geodome/geom

package geom

import "gonum.org/v1/gonum/spatial/r3"

// Face is a triangle over three Points. Corner order is counter-clockwise
// seen from outside the solid, so Normal points away from the centre.
type Face struct {
	A, B, C Point
}

// Corners returns the three corners in order.
func (f Face) Corners() [3]Point {
	return [3]Point{f.A, f.B, f.C}
}

// Normal returns the (unnormalised) right-hand normal (B-A)×(C-A).
func (f Face) Normal() r3.Vec {
	return r3.Cross(r3.Sub(f.B.Pos, f.A.Pos), r3.Sub(f.C.Pos, f.A.Pos))
}

// Centroid returns the arithmetic mean of the three corners.
func (f Face) Centroid() r3.Vec {
	return r3.Scale(1.0/3.0, r3.Add(r3.Add(f.A.Pos, f.B.Pos), f.C.Pos))
}

// Outward reports whether the winding of f faces away from the origin.
func (f Face) Outward() bool {
	return r3.Dot(f.Normal(), f.Centroid()) > 0
}
