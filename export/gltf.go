// SPDX-License-Identifier: MIT
// Package: geodome/export
//
// gltf.go — binary glTF mesh of the panels.

package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/katalvlaran/geodome/dome"
	"github.com/katalvlaran/geodome/geom"
)

// GLTFDocument builds a single-mesh glTF document from res. Vertex k of the
// mesh is point id k+1; every triangle is wound counter-clockwise seen from
// outside the sphere.
func GLTFDocument(res *dome.Result) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(res.Points))
	for k, p := range res.Points {
		positions[k] = [3]float32{float32(p.Pos.X), float32(p.Pos.Y), float32(p.Pos.Z)}
	}
	indices := make([]uint32, 0, 3*len(res.Triangles))
	for _, t := range res.Triangles {
		a, b, c := outward(res.Points, t)
		indices = append(indices, uint32(a-1), uint32(b-1), uint32(c-1))
	}

	pos := modeler.WritePosition(doc, positions)
	idx := modeler.WriteIndices(doc, indices)

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "panel",
		DoubleSided: false,
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "dome",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]uint32{"POSITION": pos},
			Material:   gltf.Index(0),
			Mode:       gltf.PrimitiveTriangles,
		}},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "dome",
		Mesh: gltf.Index(0),
	})

	return doc
}

// WriteGLTF writes res as a binary glTF (.glb) file.
func WriteGLTF(path string, res *dome.Result) error {
	doc := GLTFDocument(res)
	return writeAtomic(path, func(w io.Writer) error {
		enc := gltf.NewEncoder(w)
		enc.AsBinary = true
		return errors.Wrap(enc.Encode(doc), "encode gltf")
	})
}

// outward orders t so that its normal points away from the origin.
func outward(points []geom.Point, t geom.Triangle) (a, b, c geom.PointID) {
	f := geom.Face{A: points[t[0]-1], B: points[t[1]-1], C: points[t[2]-1]}
	if f.Outward() {
		return t[0], t[1], t[2]
	}
	return t[0], t[2], t[1]
}
