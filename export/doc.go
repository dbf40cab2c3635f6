// Package export writes a dome.Result to disk.
//
// Text artifacts (the CAD import contract):
//
//	Nodes.txt      one "x y z" line per hub; line k is point id k
//	Edges.txt      one "i j" line per strut (1-based node lines)
//	Triangles.txt  one "a b c" line per panel
//
// Records are separated by "\n" with no trailing newline. Reals use the
// shortest representation that parses back to the same float64, so two
// runs with the same configuration produce byte-identical files.
//
// Every file is written to a temporary name in the target directory and
// renamed into place; a failed write never leaves a partial artifact.
//
// Companion formats: DXF (hubs, struts, panels on separate layers),
// binary glTF (outward-wound panel mesh) and GeoJSON (hub map in
// longitude/latitude degrees).
package export
