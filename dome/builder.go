// SPDX-License-Identifier: MIT
// Package: geodome/dome
//
// builder.go — New and Build.
//
// Stages (each logged at Debug with its counts and elapsed time):
//   1) seed       — 12 vertices, 20 faces; ids 1..12.
//   2) subdivide  — (n+1)(n+2)/2 candidates per face, fresh ids.
//   3) points     — global dedup; canonical ids 1..V in first-seen order,
//                   so the seed vertices keep ids 1..12.
//   4) edges      — remap, drop degenerate, dedup by unordered pair.
//   5) hubs       — adjacency index.
//   6) triangles  — closed triangles (exhaustive or lattice).
//   7) project    — radius R, when Projected.

package dome

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/geodome/dedup"
	"github.com/katalvlaran/geodome/geom"
	"github.com/katalvlaran/geodome/hub"
	"github.com/katalvlaran/geodome/icosa"
	"github.com/katalvlaran/geodome/project"
	"github.com/katalvlaran/geodome/subdivide"
	"github.com/katalvlaran/geodome/tri"
)

// Builder runs the pipeline for one validated Config.
type Builder struct {
	cfg Config
	log logrus.FieldLogger
}

// New applies opts over DefaultConfig and validates the result.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{cfg: DefaultConfig(), log: discardLogger()}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Config returns the validated parameter set.
func (b *Builder) Config() Config { return b.cfg }

// Build generates the dome. The same Builder may be built repeatedly; every
// call starts from a fresh id allocator and yields identical output.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	cfg := b.cfg
	log := b.log.WithFields(logrus.Fields{"radius": cfg.Radius, "frequency": cfg.Frequency})
	stats := Stats{}

	stage := func(name string, t0 time.Time, fields logrus.Fields) error {
		fields["stage"] = name
		fields["elapsed"] = time.Since(t0)
		log.WithFields(fields).Debug("stage done")
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: after %s: %w", methodBuild, name, err)
		}
		return nil
	}

	// 1) seed
	t0 := time.Now()
	alloc := geom.NewAllocator(1)
	solid, err := icosa.Seed(alloc, cfg.Radius, icosa.WithPrecision(cfg.Precision))
	if err != nil {
		return nil, fmt.Errorf("%s: seed: %w", methodBuild, err)
	}
	if err = stage("seed", t0, logrus.Fields{"points": icosa.VertexCount, "faces": icosa.FaceCount}); err != nil {
		return nil, err
	}

	// 2) subdivide
	t0 = time.Now()
	lattices, err := subdivide.All(ctx, solid.Faces[:], cfg.Frequency, alloc, cfg.Parallel)
	if err != nil {
		return nil, fmt.Errorf("%s: subdivide: %w", methodBuild, err)
	}
	candidates := make([]geom.Point, 0, icosa.VertexCount+icosa.FaceCount*subdivide.PointCount(cfg.Frequency))
	candidates = append(candidates, solid.Vertices[:]...)
	candidates = append(candidates, subdivide.Candidates(lattices)...)
	stats.Candidates = len(candidates)
	if err = stage("subdivide", t0, logrus.Fields{"points": len(candidates), "workers": cfg.Parallel}); err != nil {
		return nil, err
	}

	// 3) points
	t0 = time.Now()
	canonical, err := dedup.Points(candidates, cfg.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("%s: points: %w", methodBuild, err)
	}
	stats.Merged = canonical.Merged()
	if err = stage("points", t0, logrus.Fields{"points": canonical.Len(), "merged": stats.Merged}); err != nil {
		return nil, err
	}

	// 4) edges
	t0 = time.Now()
	edges, err := dedup.Edges(subdivide.RawEdges(lattices), canonical)
	if err != nil {
		return nil, fmt.Errorf("%s: edges: %w", methodBuild, err)
	}
	stats.RawEdges = edges.Raw
	stats.DroppedEdges = edges.Dropped
	stats.DuplicateEdges = edges.Duplicates
	if err = stage("edges", t0, logrus.Fields{"edges": len(edges.Edges), "dropped": edges.Dropped, "duplicates": edges.Duplicates}); err != nil {
		return nil, err
	}

	// 5) hubs
	t0 = time.Now()
	idx, err := hub.Build(edges.Edges)
	if err != nil {
		return nil, fmt.Errorf("%s: hubs: %w", methodBuild, err)
	}
	stats.Valence = idx.Valence()
	if err = stage("hubs", t0, logrus.Fields{"hubs": idx.Len()}); err != nil {
		return nil, err
	}

	// 6) triangles
	t0 = time.Now()
	var triangles []geom.Triangle
	switch cfg.Triangles {
	case TrianglesLattice:
		triangles, err = tri.FromLattices(lattices, canonical)
		if err != nil {
			return nil, fmt.Errorf("%s: triangles: %w", methodBuild, err)
		}
	default:
		triangles = tri.Exhaustive(idx)
	}
	if err = stage("triangles", t0, logrus.Fields{"triangles": len(triangles), "method": cfg.Triangles}); err != nil {
		return nil, err
	}

	// 7) project
	points := canonical.Points
	if cfg.Projected {
		t0 = time.Now()
		points, err = project.Sphere(canonical.Points, cfg.Radius)
		if err != nil {
			return nil, fmt.Errorf("%s: project: %w", methodBuild, err)
		}
		if err = stage("project", t0, logrus.Fields{"points": len(points)}); err != nil {
			return nil, err
		}
	}

	stats.MinStrut, stats.MaxStrut = strutRange(points, edges.Edges)
	stats.Elapsed = time.Since(start)

	log.WithFields(logrus.Fields{
		"points":    len(points),
		"edges":     len(edges.Edges),
		"triangles": len(triangles),
		"elapsed":   stats.Elapsed,
	}).Debug("build done")

	return &Result{
		Config:    cfg,
		Points:    points,
		Edges:     edges.Edges,
		Triangles: triangles,
		Index:     idx,
		Stats:     stats,
	}, nil
}

// strutRange returns the shortest and longest edge length.
func strutRange(points []geom.Point, edges []geom.Edge) (lo, hi float64) {
	if len(edges) == 0 {
		return 0, 0
	}
	lo = math.Inf(1)
	for _, e := range edges {
		d := geom.Distance(points[e.A-1], points[e.B-1])
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
