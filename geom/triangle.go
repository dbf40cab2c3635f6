// SPDX-License-Identifier: MIT
// Package: geodome/geom

package geom

// Triangle is a sorted triple of point ids (ascending).
type Triangle [3]PointID

// NewTriangle returns the ascending triple of a, b and c.
func NewTriangle(a, b, c PointID) Triangle {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Triangle{a, b, c}
}

// Repeated reports whether any id occurs twice.
func (t Triangle) Repeated() bool {
	return t[0] == t[1] || t[1] == t[2] || t[0] == t[2]
}

// Less orders triangles lexicographically.
func (t Triangle) Less(u Triangle) bool {
	for i := 0; i < 3; i++ {
		if t[i] != u[i] {
			return t[i] < u[i]
		}
	}
	return false
}
