// SPDX-License-Identifier: MIT
// Package: geodome/hub
//
// index.go — Build(edges) constructor and read-only queries.
//
// Contract:
//   • Edge endpoints must be ≥ 1 (ErrInvalidID) and distinct (ErrSelfLoop).
//   • A repeated pair is stored once.
//
// Complexity: Build O(E log Δ), Neighbors O(Δ), Has O(log Δ).

package hub

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/geodome/geom"
)

const methodBuild = "Build"

var (
	// ErrSelfLoop indicates an edge whose endpoints are the same point.
	ErrSelfLoop = errors.New("hub: edge endpoints are equal")

	// ErrInvalidID indicates an endpoint id below 1.
	ErrInvalidID = errors.New("hub: point id must be >= 1")
)

// Index maps every hub to its sorted neighbour ids.
type Index struct {
	adj   [][]geom.PointID // adj[id], id in 1..maxID; nil for absent ids
	hubs  int
	edges int

	matOnce sync.Once
	mat     *Matrix
}

// Build returns the adjacency index of edges.
func Build(edges []geom.Edge) (*Index, error) {
	var maxID geom.PointID
	for _, e := range edges {
		if e.A < 1 || e.B < 1 {
			return nil, fmt.Errorf("%s: edge %d (%d,%d): %w", methodBuild, e.ID, e.A, e.B, ErrInvalidID)
		}
		if e.Degenerate() {
			return nil, fmt.Errorf("%s: edge %d (%d,%d): %w", methodBuild, e.ID, e.A, e.B, ErrSelfLoop)
		}
		maxID = max(maxID, e.A, e.B)
	}

	idx := &Index{adj: make([][]geom.PointID, int(maxID)+1)}
	for _, e := range edges {
		if idx.insert(e.A, e.B) {
			idx.insert(e.B, e.A)
			idx.edges++
		}
	}
	for _, nbrs := range idx.adj {
		if len(nbrs) > 0 {
			idx.hubs++
		}
	}

	return idx, nil
}

// insert adds b to the sorted list of a and reports whether it was new.
func (x *Index) insert(a, b geom.PointID) bool {
	list := x.adj[a]
	pos, found := slices.BinarySearch(list, b)
	if found {
		return false
	}
	x.adj[a] = slices.Insert(list, pos, b)
	return true
}

// Len returns the number of hubs (points with at least one neighbour).
func (x *Index) Len() int { return x.hubs }

// EdgeCount returns the number of distinct undirected pairs.
func (x *Index) EdgeCount() int { return x.edges }

// MaxID returns the largest id that may appear in the index.
func (x *Index) MaxID() geom.PointID {
	return geom.PointID(len(x.adj) - 1)
}

// IDs returns the hub ids in ascending order.
func (x *Index) IDs() []geom.PointID {
	out := make([]geom.PointID, 0, x.hubs)
	for id, nbrs := range x.adj {
		if len(nbrs) > 0 {
			out = append(out, geom.PointID(id))
		}
	}
	return out
}

// Neighbors returns a sorted copy of the neighbours of id (nil if id is not
// a hub).
func (x *Index) Neighbors(id geom.PointID) []geom.PointID {
	if !x.valid(id) {
		return nil
	}
	return slices.Clone(x.adj[id])
}

// Degree returns the valence of id.
func (x *Index) Degree(id geom.PointID) int {
	if !x.valid(id) {
		return 0
	}
	return len(x.adj[id])
}

// Has reports whether a and b share an edge.
func (x *Index) Has(a, b geom.PointID) bool {
	if !x.valid(a) || !x.valid(b) {
		return false
	}
	_, found := slices.BinarySearch(x.adj[a], b)
	return found
}

// Symmetric reports whether every neighbour relation holds both ways.
func (x *Index) Symmetric() bool {
	for a, nbrs := range x.adj {
		for _, b := range nbrs {
			if !x.Has(b, geom.PointID(a)) {
				return false
			}
		}
	}
	return true
}

// Valence returns the number of hubs per degree.
func (x *Index) Valence() map[int]int {
	out := make(map[int]int)
	for _, nbrs := range x.adj {
		if len(nbrs) > 0 {
			out[len(nbrs)]++
		}
	}
	return out
}

// Matrix returns the bit adjacency matrix of the index, building it on first
// call.
func (x *Index) Matrix() *Matrix {
	x.matOnce.Do(func() {
		m := NewMatrix(len(x.adj))
		for a, nbrs := range x.adj {
			for _, b := range nbrs {
				m.Set(geom.PointID(a), b)
			}
		}
		x.mat = m
	})
	return x.mat
}

func (x *Index) valid(id geom.PointID) bool {
	return id >= 1 && int(id) < len(x.adj)
}
