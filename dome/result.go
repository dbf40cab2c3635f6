// SPDX-License-Identifier: MIT
// Package: geodome/dome
//
// result.go — Result, Stats and the topology check.

package dome

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/geodome/geom"
	"github.com/katalvlaran/geodome/hub"
	"github.com/katalvlaran/geodome/tri"
)

// Result is the output of one Build.
type Result struct {
	Config Config
	// Points are the canonical hubs; Points[k].ID == k+1.
	Points []geom.Point
	// Edges are the struts, numbered 1..len(Edges).
	Edges []geom.Edge
	// Triangles are the reconstructed panels, sorted.
	Triangles []geom.Triangle
	// Index is the hub adjacency of Edges.
	Index *hub.Index
	Stats Stats
}

// Stats are the diagnostics of one Build.
type Stats struct {
	Candidates     int // points generated before dedup (seed + lattices)
	Merged         int // candidates folded into an earlier point
	RawEdges       int
	DroppedEdges   int // degenerate after remap
	DuplicateEdges int
	Valence        map[int]int // degree → hub count
	MinStrut       float64
	MaxStrut       float64
	Elapsed        time.Duration
}

// ExpectedPoints returns the hub count of a full sphere at frequency n.
func ExpectedPoints(n int) int { return 10*n*n + 2 }

// ExpectedEdges returns the strut count of a full sphere at frequency n.
func ExpectedEdges(n int) int { return 30 * n * n }

// Validate checks r against the closed geodesic sphere of its Config and
// returns every violation joined, each matching ErrTopology; nil if none.
func (r *Result) Validate() error {
	n := r.Config.Frequency
	v, e, f := len(r.Points), len(r.Edges), len(r.Triangles)
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s: %w", methodValidate, fmt.Sprintf(format, args...), ErrTopology))
	}

	if want := ExpectedPoints(n); v != want {
		fail("points %d, want %d", v, want)
	}
	if want := ExpectedEdges(n); e != want {
		fail("edges %d, want %d", e, want)
	}
	if err := tri.Check(r.Triangles, n); err != nil {
		fail("%v", err)
	}
	if chi := v - e + f; chi != 2 {
		fail("euler characteristic %d, want 2", chi)
	}

	for k, p := range r.Points {
		if p.ID != geom.PointID(k+1) {
			fail("point %d has id %d", k+1, p.ID)
			break
		}
	}

	inRange := func(id geom.PointID) bool { return id >= 1 && int(id) <= v }

	pairs := make(map[geom.EdgeKey]struct{}, e)
	for _, edge := range r.Edges {
		switch {
		case !inRange(edge.A) || !inRange(edge.B):
			fail("edge %d references missing point", edge.ID)
		case edge.Degenerate():
			fail("edge %d has equal endpoints", edge.ID)
		}
		if _, dup := pairs[edge.Key()]; dup {
			fail("edge %d repeats pair (%d,%d)", edge.ID, edge.A, edge.B)
		}
		pairs[edge.Key()] = struct{}{}
	}

	triples := make(map[geom.Triangle]struct{}, f)
	for _, t := range r.Triangles {
		st := geom.NewTriangle(t[0], t[1], t[2])
		switch {
		case !inRange(t[0]) || !inRange(t[1]) || !inRange(t[2]):
			fail("triangle %v references missing point", t)
		case st.Repeated():
			fail("triangle %v repeats a point", t)
		}
		if _, dup := triples[st]; dup {
			fail("triangle %v is duplicated", t)
		}
		triples[st] = struct{}{}
	}

	if r.Index != nil {
		if !r.Index.Symmetric() {
			fail("hub index is not symmetric")
		}
		if !r.Index.Connected() {
			fail("hub graph is not connected")
		}
	}

	if r.Config.Projected {
		for _, p := range r.Points {
			if d := p.Radius(); math.Abs(d-r.Config.Radius) > r.Config.Tolerance {
				fail("point %d at distance %v, want %v", p.ID, d, r.Config.Radius)
				break
			}
		}
	}

	return errors.Join(errs...)
}
