// Package geom defines the value types shared by every stage of the
// geodesic pipeline: Point, Face, Edge and Triangle, plus the Allocator
// that hands out stable point identities.
//
// Identity model:
//
//	Point.ID   — positive integer, assigned once by an Allocator, never reused.
//	Point.Pos  — cartesian coordinates (gonum spatial/r3.Vec).
//
// Two Points are the same vertex iff their coordinates agree on every axis
// within a tolerance ε (see Equal); identity never participates in that test.
//
// Edges and Triangles refer to Points by ID only. After deduplication the
// IDs are canonical and contiguous (1..V), which is what the text artifacts
// rely on: node line k holds Point k.
package geom
