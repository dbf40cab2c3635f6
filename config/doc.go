// Package config loads the generator parameters from a YAML file.
//
// A file overlays the defaults, so every key is optional:
//
//	radius: 2
//	frequency: 2
//	dome: true
//	icosahedral: false     # true emits flat-faceted coordinates
//	cylindrical: false
//	cut_point: 0.8
//	tolerance: 1.0e-4
//	precision: 128
//	triangles: exhaustive  # or lattice
//	parallel: 1
//	output:
//	  dir: .
//	  nodes: Nodes.txt
//	  edges: Edges.txt
//	  triangles: Triangles.txt
//	  dxf: ""              # empty skips the companion export
//	  gltf: ""
//	  geojson: ""
//
// Unknown keys are rejected.
package config
