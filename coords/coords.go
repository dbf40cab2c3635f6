// SPDX-License-Identifier: MIT
// Package: geodome/coords

package coords

import (
	"math"

	georr3 "github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spherical is a point in spherical coordinates.
type Spherical struct {
	R     float64 // distance from the origin
	Theta float64 // elevation, radians
	Phi   float64 // azimuth, radians
}

// Cylindrical is a point in cylindrical coordinates.
type Cylindrical struct {
	Rho float64 // distance from the Z axis
	Phi float64 // azimuth, radians
	Z   float64
}

// Cart2Sp converts v to spherical coordinates. The origin maps to the zero
// value.
func Cart2Sp(v r3.Vec) Spherical {
	r := r3.Norm(v)
	if r == 0 {
		return Spherical{}
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: georr3.Vector{X: v.X, Y: v.Y, Z: v.Z}})
	return Spherical{R: r, Theta: ll.Lat.Radians(), Phi: ll.Lng.Radians()}
}

// Sp2Cart converts s to cartesian coordinates.
func Sp2Cart(s Spherical) r3.Vec {
	ll := s2.LatLng{Lat: s1.Angle(s.Theta) * s1.Radian, Lng: s1.Angle(s.Phi) * s1.Radian}
	u := s2.PointFromLatLng(ll)
	return r3.Vec{X: s.R * u.X, Y: s.R * u.Y, Z: s.R * u.Z}
}

// Cart2Cyl converts v to cylindrical coordinates.
func Cart2Cyl(v r3.Vec) Cylindrical {
	return Cylindrical{Rho: math.Hypot(v.X, v.Y), Phi: math.Atan2(v.Y, v.X), Z: v.Z}
}

// Cyl2Cart converts c to cartesian coordinates.
func Cyl2Cart(c Cylindrical) r3.Vec {
	return r3.Vec{X: c.Rho * math.Cos(c.Phi), Y: c.Rho * math.Sin(c.Phi), Z: c.Z}
}

// Sp2Cyl converts s to cylindrical coordinates.
func Sp2Cyl(s Spherical) Cylindrical {
	return Cylindrical{Rho: s.R * math.Cos(s.Theta), Phi: s.Phi, Z: s.R * math.Sin(s.Theta)}
}

// Degrees returns s with both angles in degrees.
func (s Spherical) Degrees() (theta, phi float64) {
	return (s1.Angle(s.Theta) * s1.Radian).Degrees(), (s1.Angle(s.Phi) * s1.Radian).Degrees()
}
