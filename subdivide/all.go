// SPDX-License-Identifier: MIT
// Package: geodome/subdivide
//
// all.go — subdivision of a whole face list.
//
// Concurrency:
//   • workers <= 1 runs sequentially on alloc.
//   • workers > 1 reserves one id Block per Face from alloc (in face order),
//     then subdivides the Faces on an errgroup limited to workers goroutines.
//     Reservation order equals sequential allocation order, so both paths
//     assign identical ids.

package subdivide

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geodome/geom"
)

// All subdivides every Face in faces at frequency n and returns the
// lattices in input order.
func All(ctx context.Context, faces []geom.Face, n int, alloc *geom.Allocator, workers int) ([]Lattice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodAll, n, ErrFrequency)
	}
	if alloc == nil {
		return nil, fmt.Errorf("%s: %w", methodAll, ErrNilIDSource)
	}

	out := make([]Lattice, len(faces))

	if workers <= 1 {
		for k, f := range faces {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			l, err := Face(f, n, alloc)
			if err != nil {
				return nil, fmt.Errorf("%s: face %d: %w", methodAll, k, err)
			}
			l.Face = k
			out[k] = l
		}
		return out, nil
	}

	blocks := make([]*geom.Block, len(faces))
	for k := range faces {
		blocks[k] = alloc.Reserve(PointCount(n))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range faces {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := Face(faces[k], n, blocks[k])
			if err != nil {
				return fmt.Errorf("%s: face %d: %w", methodAll, k, err)
			}
			l.Face = k
			out[k] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Candidates flattens the lattice points of ls in face order.
func Candidates(ls []Lattice) []geom.Point {
	total := 0
	for _, l := range ls {
		total += len(l.Points)
	}
	out := make([]geom.Point, 0, total)
	for _, l := range ls {
		out = append(out, l.Points...)
	}
	return out
}

// RawEdges flattens the sub-triangle edges of ls in face order.
func RawEdges(ls []Lattice) [][2]geom.PointID {
	total := 0
	for _, l := range ls {
		total += 3 * len(l.Triangles)
	}
	out := make([][2]geom.PointID, 0, total)
	for _, l := range ls {
		out = append(out, l.Edges()...)
	}
	return out
}
