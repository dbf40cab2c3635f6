// Package tri recovers the closed triangles of a hub graph.
//
// Two implementations share one contract: the sorted, duplicate-free list of
// id triples {a<b<c} that are pairwise adjacent, in lexicographic order.
//
//   - Exhaustive is the reference search over every id triple a<b<c in
//     1..V, with O(1) membership from the hub bit matrix. Time is O(V²) after
//     pruning pairs that are not adjacent, plus O(V²) bits of matrix memory.
//     That growth is its scaling limit.
//   - FromLattices maps the sub-triangles recorded during subdivision through
//     the canonical mapping and sorts them. It is O(F log F) and yields the
//     same output as Exhaustive for a valid triangulated sphere.
//
// Neither fails on a broken graph; Check compares a result against the
// expected 20·n² so callers can detect one.
package tri
