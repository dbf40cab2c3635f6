// SPDX-License-Identifier: MIT
// Package: geodome/export
//
// text.go — node, edge and triangle records.
//
// Contract:
//   • Records are checked before the first byte is written.
//   • An edge with equal indices is ErrDegenerateRecord; any index outside
//     1..len(points) is ErrDanglingIndex.

package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/geodome/geom"
)

var (
	// ErrDegenerateRecord indicates an edge record whose two indices are equal.
	ErrDegenerateRecord = errors.New("export: degenerate record")

	// ErrDanglingIndex indicates a record referencing a missing node line.
	ErrDanglingIndex = errors.New("export: index outside node file")

	// ErrNodeOrder indicates a point whose id does not match its line.
	ErrNodeOrder = errors.New("export: node id does not match line number")
)

// WriteNodes writes one "x y z" line per point.
func WriteNodes(w io.Writer, points []geom.Point) error {
	for k, p := range points {
		if p.ID != geom.PointID(k+1) {
			return errors.Wrapf(ErrNodeOrder, "WriteNodes: line %d has id %d", k+1, p.ID)
		}
	}

	return writeLines(w, len(points), func(buf []byte, k int) []byte {
		x, y, z := points[k].XYZ()
		buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, y, 'g', -1, 64)
		buf = append(buf, ' ')
		return strconv.AppendFloat(buf, z, 'g', -1, 64)
	})
}

// WriteEdges writes one "i j" line per edge. nodes is the node line count.
func WriteEdges(w io.Writer, edges []geom.Edge, nodes int) error {
	for _, e := range edges {
		if e.Degenerate() {
			return errors.Wrapf(ErrDegenerateRecord, "WriteEdges: edge %d (%d,%d)", e.ID, e.A, e.B)
		}
		if !inNodes(e.A, nodes) || !inNodes(e.B, nodes) {
			return errors.Wrapf(ErrDanglingIndex, "WriteEdges: edge %d (%d,%d) with %d nodes", e.ID, e.A, e.B, nodes)
		}
	}

	return writeLines(w, len(edges), func(buf []byte, k int) []byte {
		return appendIDs(buf, edges[k].A, edges[k].B)
	})
}

// WriteTriangles writes one "a b c" line per triangle.
func WriteTriangles(w io.Writer, ts []geom.Triangle, nodes int) error {
	for _, t := range ts {
		for _, id := range t {
			if !inNodes(id, nodes) {
				return errors.Wrapf(ErrDanglingIndex, "WriteTriangles: triangle %v with %d nodes", t, nodes)
			}
		}
	}

	return writeLines(w, len(ts), func(buf []byte, k int) []byte {
		return appendIDs(buf, ts[k][0], ts[k][1], ts[k][2])
	})
}

// writeLines renders n records through line, separated by '\n'.
func writeLines(w io.Writer, n int, line func(buf []byte, k int) []byte) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 96)
	for k := 0; k < n; k++ {
		buf = buf[:0]
		if k > 0 {
			buf = append(buf, '\n')
		}
		buf = line(buf, k)
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write record")
		}
	}
	return errors.Wrap(bw.Flush(), "flush records")
}

func appendIDs(buf []byte, ids ...geom.PointID) []byte {
	for k, id := range ids {
		if k > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}
	return buf
}

func inNodes(id geom.PointID, nodes int) bool {
	return id >= 1 && int(id) <= nodes
}
