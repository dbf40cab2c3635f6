// Package dome is the geodesic sphere builder: it owns one run of the
// pipeline and produces the points, struts and panels of the dome.
//
// Pipeline (single owner, no shared state between runs):
//
//	icosa.Seed → subdivide.All → dedup.Points → dedup.Edges
//	           → hub.Build → tri.Exhaustive | tri.FromLattices → project.Sphere
//
// Usage:
//
//	b, err := dome.New(dome.WithRadius(3), dome.WithFrequency(2))
//	if err != nil { ... }              // errors.Is(err, dome.ErrConfiguration)
//	res, err := b.Build(ctx)
//	if err := res.Validate(); err != nil { ... } // errors.Is(err, dome.ErrTopology)
//
// Configuration is validated once by New; Build never panics. Validate is
// never called implicitly, so a caller may accept an incomplete surface.
//
// The dome, cylindrical and cut-point settings are accepted, validated and
// carried on the Result but do not change the geometry.
package dome
