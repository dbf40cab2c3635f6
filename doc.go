// Package geodome generates geodesic domes: the hubs, struts and panels of a
// subdivided icosahedron, optionally projected onto a sphere, exported as
// plain node/edge/triangle files for CAD import.
//
// Pipeline (one package per stage):
//
//	icosa/     — the 12 analytic vertices and 20 faces of the seed icosahedron
//	subdivide/ — frequency-n barycentric lattice on every face (optionally parallel)
//	dedup/     — global point merge within ε, edge remap and dedup
//	hub/       — adjacency index, bit matrix, symmetry and connectivity checks
//	tri/       — closed-triangle reconstruction (exhaustive or lattice-derived)
//	project/   — radial projection onto radius R (via coords/)
//	dome/      — the builder that runs the stages, plus Validate and the cut list
//	export/    — Nodes.txt / Edges.txt / Triangles.txt, DXF, glTF and GeoJSON
//	config/    — YAML parameters
//
// Quick start:
//
//	b, _ := dome.New(dome.WithRadius(3), dome.WithFrequency(2))
//	res, _ := b.Build(ctx)               // 42 hubs, 120 struts, 80 panels
//	_ = export.WriteFiles("out", res, export.DefaultNames())
//
// The command in cmd/geodome does the same from flags or a config file.
package geodome
