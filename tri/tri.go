// SPDX-License-Identifier: MIT
// Package: geodome/tri
//
// tri.go — triangle reconstruction and count check.

package tri

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/geodome/dedup"
	"github.com/katalvlaran/geodome/geom"
	"github.com/katalvlaran/geodome/hub"
	"github.com/katalvlaran/geodome/subdivide"
)

const (
	methodFromLattices = "FromLattices"
	methodCheck        = "Check"
)

var (
	// ErrTriangleCount indicates a triangle count other than 20·n².
	ErrTriangleCount = errors.New("tri: unexpected triangle count")

	// ErrUnmapped indicates a lattice point missing from the canonical mapping.
	ErrUnmapped = errors.New("tri: lattice point has no canonical id")
)

// Expected returns the triangle count of a full sphere at frequency n.
func Expected(n int) int {
	return 20 * n * n
}

// Exhaustive returns every triple of mutually adjacent hubs.
func Exhaustive(idx *hub.Index) []geom.Triangle {
	m := idx.Matrix()
	v := idx.MaxID()
	var out []geom.Triangle

	// a < b < c visits each unordered triple once, in lexicographic order.
	for a := geom.PointID(1); a <= v; a++ {
		for b := a + 1; b <= v; b++ {
			if !m.Has(a, b) {
				continue
			}
			for c := b + 1; c <= v; c++ {
				if m.Has(a, c) && m.Has(b, c) {
					out = append(out, geom.Triangle{a, b, c})
				}
			}
		}
	}

	return out
}

// FromLattices returns the sub-triangles of ls remapped onto canonical ids,
// sorted and deduplicated. Triangles that collapse to a repeated id are
// skipped.
func FromLattices(ls []subdivide.Lattice, c dedup.Canonical) ([]geom.Triangle, error) {
	total := 0
	for _, l := range ls {
		total += len(l.Triangles)
	}
	out := make([]geom.Triangle, 0, total)

	for _, l := range ls {
		for _, t := range l.Triangles {
			var ids [3]geom.PointID
			for k, id := range t {
				cid, ok := c.Resolve(id)
				if !ok {
					return nil, fmt.Errorf("%s: face %d point %d: %w", methodFromLattices, l.Face, id, ErrUnmapped)
				}
				ids[k] = cid
			}
			tr := geom.NewTriangle(ids[0], ids[1], ids[2])
			if tr.Repeated() {
				continue
			}
			out = append(out, tr)
		}
	}

	slices.SortFunc(out, compare)
	return slices.Compact(out), nil
}

// Check returns ErrTriangleCount when ts does not hold exactly Expected(n)
// triangles.
func Check(ts []geom.Triangle, n int) error {
	if want := Expected(n); len(ts) != want {
		return fmt.Errorf("%s: got %d, want %d: %w", methodCheck, len(ts), want, ErrTriangleCount)
	}
	return nil
}

func compare(a, b geom.Triangle) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
