// SPDX-License-Identifier: MIT
// Package: geodome/hub
//
// matrix.go — packed bit adjacency matrix.
//
// Memory: ⌈n²/64⌉ words. Set is not safe for concurrent use; Has is.

package hub

import (
	"math/bits"

	"github.com/katalvlaran/geodome/geom"
)

// Matrix is an n×n bit matrix indexed by point id.
type Matrix struct {
	n     int
	words []uint64
}

// NewMatrix allocates an empty n×n matrix. Valid ids are 0..n-1.
// Panics if n < 0.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		panic("hub: NewMatrix with negative size")
	}
	return &Matrix{n: n, words: make([]uint64, (n*n+63)/64)}
}

// Size returns n.
func (m *Matrix) Size() int { return m.n }

// Set marks the cell (a,b). Out-of-range ids are ignored.
func (m *Matrix) Set(a, b geom.PointID) {
	if k, ok := m.bit(a, b); ok {
		m.words[k/64] |= 1 << (k % 64)
	}
}

// Has reports whether (a,b) is set.
func (m *Matrix) Has(a, b geom.PointID) bool {
	k, ok := m.bit(a, b)
	return ok && m.words[k/64]&(1<<(k%64)) != 0
}

// RowCount returns the number of set cells in row a.
func (m *Matrix) RowCount(a geom.PointID) int {
	if a < 0 || int(a) >= m.n {
		return 0
	}
	count := 0
	for b := 0; b < m.n; b++ {
		if m.Has(a, geom.PointID(b)) {
			count++
		}
	}
	return count
}

// Count returns the number of set cells.
func (m *Matrix) Count() int {
	count := 0
	for _, w := range m.words {
		count += bits.OnesCount64(w)
	}
	return count
}

func (m *Matrix) bit(a, b geom.PointID) (uint, bool) {
	if a < 0 || b < 0 || int(a) >= m.n || int(b) >= m.n {
		return 0, false
	}
	return uint(int(a)*m.n + int(b)), true
}
