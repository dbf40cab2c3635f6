// Package hub builds the adjacency index ("hub list") of a deduplicated
// edge set: for every point that appears in at least one edge, the sorted
// ids of the points a single strut away.
//
// Representation:
//   - Neighbour lists are stored in an id-indexed table, not a map, so
//     iteration order is the id order and never depends on hashing.
//   - Matrix is a packed V×V bit matrix built on first use, giving O(1)
//     membership tests for the exhaustive triangle search.
//
// Queries never mutate the Index; an Index is safe for concurrent readers.
//
// Checks:
//   - Symmetric verifies that b ∈ N(a) ⇔ a ∈ N(b).
//   - Walk is a breadth-first traversal with per-vertex depth; Connected
//     reports whether one walk reaches every hub.
package hub
