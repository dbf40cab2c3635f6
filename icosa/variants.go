// SPDX-License-Identifier: MIT
// Package: geodome/icosa
//
// variants.go — canonical vertex naming and the fixed face table.
//
// Determinism:
//   • Vertex order a..l is the allocation order, so seed ids are 1..12 for a
//     fresh Allocator and the canonical node list starts with a..l.
//   • Face order: top band, middle band (lower-ring-edge faces first),
//     bottom band. Never reorder: output numbering depends on it.

package icosa

// Vertex indices into Solid.Vertices.
const (
	VertexA = iota // top apex
	VertexB        // upper ring, +Y
	VertexC
	VertexD
	VertexE
	VertexF
	VertexG // lower ring, −Y
	VertexH
	VertexI
	VertexJ
	VertexK
	VertexL // bottom apex
)

// Solid sizes.
const (
	VertexCount = 12
	FaceCount   = 20
	EdgeCount   = 30
)

// VertexNames labels the twelve vertices for diagnostics.
var VertexNames = [VertexCount]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

// faceTable lists the corners of each face by vertex index, outward wound.
var faceTable = [FaceCount][3]int{
	// top faces around a
	{VertexA, VertexC, VertexB},
	{VertexA, VertexD, VertexC},
	{VertexA, VertexE, VertexD},
	{VertexA, VertexF, VertexE},
	{VertexA, VertexB, VertexF},

	// middle faces standing on a lower-ring edge
	{VertexJ, VertexC, VertexK},
	{VertexK, VertexD, VertexG},
	{VertexG, VertexE, VertexH},
	{VertexH, VertexF, VertexI},
	{VertexI, VertexB, VertexJ},

	// middle faces hanging from an upper-ring edge
	{VertexC, VertexD, VertexK},
	{VertexD, VertexE, VertexG},
	{VertexE, VertexF, VertexH},
	{VertexF, VertexB, VertexI},
	{VertexB, VertexC, VertexJ},

	// bottom faces around l
	{VertexL, VertexJ, VertexK},
	{VertexL, VertexI, VertexJ},
	{VertexL, VertexH, VertexI},
	{VertexL, VertexG, VertexH},
	{VertexL, VertexK, VertexG},
}

// FaceTable returns a copy of the face table (vertex indices per face).
func FaceTable() [FaceCount][3]int {
	return faceTable
}
