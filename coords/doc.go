// Package coords converts between cartesian, spherical and cylindrical
// coordinates.
//
// Spherical coordinates are (r, θ, φ) with θ the elevation above the XY
// plane in [-π/2, π/2] and φ the azimuth atan2(y, x) in (-π, π]. The angular
// part goes through the s2 latitude/longitude machinery, so θ is a latitude
// and φ a longitude on the sphere of radius r.
//
// Cylindrical coordinates are (ρ, φ, z) with the same azimuth.
package coords
