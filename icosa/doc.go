// Package icosa seeds the geodesic pipeline with the twelve analytic
// vertices and twenty faces of a regular icosahedron.
//
// Geometry (closed form, no iteration):
//
//	r  = 2R/√5            pentagon ring radius for circumradius R
//	S  = 2r·sin 36°       side length
//	H  = r·cos 36°        pentagon apothem
//	Cx = r·cos 18°, Cy = r·sin 18°
//	H1 = √(S² − r²)       apex height above a ring plane
//	H2 = √((H+r)² − H²)   distance between the two ring planes
//	Z2 = (H2 − H1)/2      ring z-offset,  Z1 = Z2 + H1  apex z-offset
//
// Vertices are named a..l (top apex, upper ring b..f, lower ring g..k,
// bottom apex). Square roots and every derived product are carried in
// math/big.Float at a configurable precision and rounded to float64 only
// when the Point is created, so rounding error cannot accumulate into the
// deduplication tolerance.
//
// Topology is a fixed table (variants.go): 5 top faces around a, 10 middle
// faces alternating orientation, 5 bottom faces around l. Every face is
// wound counter-clockwise seen from outside.
package icosa
