// SPDX-License-Identifier: MIT
// Package: geodome/subdivide
//
// lattice.go — Face(face, n, ids) constructor and Lattice indexing.
//
// Complexity: O(n²) time and space per Face.

package subdivide

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/geodome/geom"
)

const (
	methodFace = "Face"
	methodAll  = "All"
)

var (
	// ErrFrequency indicates a subdivision frequency below 1.
	ErrFrequency = errors.New("subdivide: frequency must be >= 1")

	// ErrNilIDSource indicates that no id source was supplied.
	ErrNilIDSource = errors.New("subdivide: id source is nil")
)

// Lattice is the subdivision of one Face.
type Lattice struct {
	// Face is the position of the parent in the input face list.
	Face int
	// Frequency is the subdivision frequency n.
	Frequency int
	// Points holds the lattice points row by row (index = i(i+1)/2 + j).
	Points []geom.Point
	// Triangles holds the n² sub-triangles as candidate-id triples.
	Triangles [][3]geom.PointID
}

// PointCount returns the number of lattice points at frequency n.
func PointCount(n int) int {
	return (n + 1) * (n + 2) / 2
}

// TriangleCount returns the number of sub-triangles at frequency n.
func TriangleCount(n int) int {
	return n * n
}

// index maps lattice coordinates (i,j) to a position in Points.
func index(i, j int) int {
	return i*(i+1)/2 + j
}

// At returns the lattice point at row i, column j.
func (l Lattice) At(i, j int) geom.Point {
	return l.Points[index(i, j)]
}

// Coordinate is the inverse of the (i,j) → index mapping.
func (l Lattice) Coordinate(idx int) (i, j int) {
	for index(i+1, 0) <= idx {
		i++
	}
	return i, idx - index(i, 0)
}

// Edges returns the three edges of every sub-triangle, in sub-triangle order.
// Interior edges appear twice; deduplication happens later.
func (l Lattice) Edges() [][2]geom.PointID {
	out := make([][2]geom.PointID, 0, 3*len(l.Triangles))
	for _, t := range l.Triangles {
		out = append(out,
			[2]geom.PointID{t[0], t[1]},
			[2]geom.PointID{t[1], t[2]},
			[2]geom.PointID{t[2], t[0]},
		)
	}
	return out
}

// Face subdivides f at frequency n, taking a fresh id from ids for every
// lattice point. n == 1 reproduces f (with fresh ids).
func Face(f geom.Face, n int, ids geom.IDSource) (Lattice, error) {
	if n < 1 {
		return Lattice{}, fmt.Errorf("%s: n=%d: %w", methodFace, n, ErrFrequency)
	}
	if ids == nil {
		return Lattice{}, fmt.Errorf("%s: %w", methodFace, ErrNilIDSource)
	}

	l := Lattice{
		Frequency: n,
		Points:    make([]geom.Point, 0, PointCount(n)),
		Triangles: make([][3]geom.PointID, 0, TriangleCount(n)),
	}

	// 1) Lattice points, row-major.
	fn := float64(n)
	for i := 0; i <= n; i++ {
		for j := 0; j <= i; j++ {
			l.Points = append(l.Points, geom.Point{
				ID:  ids.Next(),
				Pos: interpolate(f, float64(n-i)/fn, float64(i-j)/fn, float64(j)/fn),
			})
		}
	}

	// 2) Sub-triangles: upward (i,j),(i+1,j),(i+1,j+1); downward
	//    (i,j),(i+1,j+1),(i,j+1). Both keep the parent's winding.
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			l.Triangles = append(l.Triangles, [3]geom.PointID{
				l.At(i, j).ID, l.At(i+1, j).ID, l.At(i+1, j+1).ID,
			})
			if j < i {
				l.Triangles = append(l.Triangles, [3]geom.PointID{
					l.At(i, j).ID, l.At(i+1, j+1).ID, l.At(i, j+1).ID,
				})
			}
		}
	}

	return l, nil
}

// interpolate returns wa·A + wb·B + wc·C. A weight of exactly 1 returns the
// corner unchanged.
func interpolate(f geom.Face, wa, wb, wc float64) r3.Vec {
	switch {
	case wa == 1:
		return f.A.Pos
	case wb == 1:
		return f.B.Pos
	case wc == 1:
		return f.C.Pos
	}
	return r3.Add(r3.Add(r3.Scale(wa, f.A.Pos), r3.Scale(wb, f.B.Pos)), r3.Scale(wc, f.C.Pos))
}
