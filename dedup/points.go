// SPDX-License-Identifier: MIT
// Package: geodome/dedup
//
// points.go — global point deduplication.
//
// Contract:
//   • eps must be finite and > 0 (ErrTolerance).
//   • Every candidate must be finite (ErrNonFinite) and carry a unique id
//     (ErrDuplicateID).
//   • When a candidate is within eps of several canonical points (tolerance
//     is not transitive) it joins the earliest one.
//
// Determinism: output depends only on candidate order.

package dedup

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geodome/geom"
)

const (
	methodPoints = "Points"
	methodEdges  = "Edges"
)

var (
	// ErrTolerance indicates a non-positive or non-finite tolerance.
	ErrTolerance = errors.New("dedup: tolerance must be finite and > 0")

	// ErrNonFinite indicates a candidate with NaN or infinite coordinates.
	ErrNonFinite = errors.New("dedup: candidate has non-finite coordinates")

	// ErrDuplicateID indicates two candidates sharing one id.
	ErrDuplicateID = errors.New("dedup: duplicate candidate id")

	// ErrUnknownPoint indicates an edge endpoint that is not a known candidate.
	ErrUnknownPoint = errors.New("dedup: unknown point id")
)

// Canonical is the result of point deduplication.
type Canonical struct {
	// Points are the canonical points; Points[k].ID == k+1.
	Points []geom.Point
	// Source holds the original candidate id of each canonical point.
	Source []geom.PointID
	// Candidates is the number of input candidates.
	Candidates int

	mapping map[geom.PointID]geom.PointID
}

// Resolve returns the canonical id of candidate id.
func (c Canonical) Resolve(id geom.PointID) (geom.PointID, bool) {
	cid, ok := c.mapping[id]
	return cid, ok
}

// Merged returns how many candidates were folded into an earlier point.
func (c Canonical) Merged() int {
	return c.Candidates - len(c.Points)
}

// Len returns the number of canonical points.
func (c Canonical) Len() int {
	return len(c.Points)
}

type cell [3]int64

// Points deduplicates candidates with per-axis tolerance eps.
func Points(candidates []geom.Point, eps float64) (Canonical, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return Canonical{}, fmt.Errorf("%s: eps=%v: %w", methodPoints, eps, ErrTolerance)
	}

	c := Canonical{
		Candidates: len(candidates),
		mapping:    make(map[geom.PointID]geom.PointID, len(candidates)),
	}
	grid := make(map[cell][]int) // cell → indices into c.Points

	for _, p := range candidates {
		if !p.Finite() {
			return Canonical{}, fmt.Errorf("%s: candidate %d: %w", methodPoints, p.ID, ErrNonFinite)
		}
		if _, dup := c.mapping[p.ID]; dup {
			return Canonical{}, fmt.Errorf("%s: candidate %d: %w", methodPoints, p.ID, ErrDuplicateID)
		}

		home := cellOf(p, eps)
		best := -1
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, k := range grid[cell{home[0] + dx, home[1] + dy, home[2] + dz}] {
						if (best < 0 || k < best) && geom.Equal(c.Points[k].Pos, p.Pos, eps) {
							best = k
						}
					}
				}
			}
		}

		if best >= 0 {
			c.mapping[p.ID] = c.Points[best].ID
			continue
		}

		k := len(c.Points)
		id := geom.PointID(k + 1)
		c.Points = append(c.Points, geom.Point{ID: id, Pos: p.Pos})
		c.Source = append(c.Source, p.ID)
		c.mapping[p.ID] = id
		grid[home] = append(grid[home], k)
	}

	return c, nil
}

func cellOf(p geom.Point, eps float64) cell {
	return cell{
		int64(math.Floor(p.Pos.X / eps)),
		int64(math.Floor(p.Pos.Y / eps)),
		int64(math.Floor(p.Pos.Z / eps)),
	}
}
