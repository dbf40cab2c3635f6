// SPDX-License-Identifier: MIT
// Package: geodome/dedup
//
// edges.go — edge remapping and deduplication.

package dedup

import (
	"fmt"

	"github.com/katalvlaran/geodome/geom"
)

// EdgeSet is the deduplicated edge list.
type EdgeSet struct {
	// Edges are numbered 1..len(Edges) in first-seen order.
	Edges []geom.Edge
	// Raw is the number of input edges.
	Raw int
	// Dropped counts edges whose endpoints collapsed onto one point.
	Dropped int
	// Duplicates counts repeated copies of an already kept pair.
	Duplicates int
}

// Edges remaps raw candidate edges onto canonical ids and deduplicates them
// by unordered pair.
func Edges(raw [][2]geom.PointID, c Canonical) (EdgeSet, error) {
	set := EdgeSet{Raw: len(raw)}
	seen := make(map[geom.EdgeKey]struct{}, len(raw)/2)

	for _, r := range raw {
		a, ok := c.Resolve(r[0])
		if !ok {
			return EdgeSet{}, fmt.Errorf("%s: endpoint %d: %w", methodEdges, r[0], ErrUnknownPoint)
		}
		b, ok := c.Resolve(r[1])
		if !ok {
			return EdgeSet{}, fmt.Errorf("%s: endpoint %d: %w", methodEdges, r[1], ErrUnknownPoint)
		}

		if a == b {
			set.Dropped++
			continue
		}

		key := geom.KeyOf(a, b)
		if _, dup := seen[key]; dup {
			set.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		set.Edges = append(set.Edges, geom.Edge{ID: len(set.Edges) + 1, A: a, B: b})
	}

	return set, nil
}
