// Package subdivide splits a triangular Face into a regular lattice of
// sub-triangles at frequency n.
//
// Lattice layout (row i from corner A, column j toward C):
//
//	            A (0,0)
//	           /     \
//	       (1,0) ─── (1,1)
//	       /   \     /   \
//	  B (n,0) ─── … ─── (n,n) C
//
// Point (i,j), 0 ≤ j ≤ i ≤ n, has barycentric weights
// ((n−i)/n, (i−j)/n, j/n) over (A,B,C); there are (n+1)(n+2)/2 of them.
// Each row contributes i+1 upward and i downward sub-triangles, n² total,
// all wound like the parent Face. Every sub-triangle yields its three edges.
//
// Every lattice point, corners included, receives a fresh id: no
// deduplication happens here. Points on a shared base edge are computed from
// the same two corners with complementary weights, so neighbouring Faces
// produce coordinates that agree to rounding error.
//
// All subdivides a whole face list, optionally in parallel; ids are reserved
// per Face up front so the result is identical to the sequential run.
package subdivide
