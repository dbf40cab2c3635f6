// Package dedup collapses coincident candidate points into canonical
// points and rebuilds the edge set on top of them.
//
// Points groups candidates whose coordinates agree within ε on every axis.
// The first candidate of a group becomes canonical; canonical points are
// renumbered 1..V in order of first appearance and every candidate id maps
// to its canonical id. Lookup uses a uniform grid of ε-sized cells, so only
// the 27 cells around a candidate are compared (expected O(N) overall).
//
// Edges remaps raw edges through that mapping, drops edges whose endpoints
// collapsed onto the same canonical point, and keeps the first copy of every
// unordered pair, numbering survivors 1..E in first-seen order.
//
// Both must run once over the complete candidate set: two Faces sharing a
// base edge only agree after the global comparison.
package dedup
