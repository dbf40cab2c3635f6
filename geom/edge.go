// SPDX-License-Identifier: MIT
// Package: geodome/geom

package geom

// Edge is an unordered pair of canonical point ids with a sequential number.
// A and B keep the orientation in which the pair was first seen.
type Edge struct {
	ID   int
	A, B PointID
}

// EdgeKey is the orientation-free identity of an edge: Lo <= Hi.
type EdgeKey struct {
	Lo, Hi PointID
}

// KeyOf returns the unordered key of the pair (a,b).
func KeyOf(a, b PointID) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Key returns the unordered key of e.
func (e Edge) Key() EdgeKey {
	return KeyOf(e.A, e.B)
}

// Degenerate reports whether both endpoints are the same point.
func (e Edge) Degenerate() bool {
	return e.A == e.B
}

// Other returns the endpoint of e that is not id, and false if id is not
// an endpoint.
func (e Edge) Other(id PointID) (PointID, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return 0, false
	}
}
