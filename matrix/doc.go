// SPDX-License-Identifier: MIT

// Package matrix provides a flat row-major float64 matrix with an explicit
// stride, used as the all-pairs distance table of a graph.
//
// Distance convention: +Inf means "no path"; the diagonal is 0.
//
// Two producers fill a distance table from a core.ARG:
//
//	Distances(g)        - unit-weight adjacency closed by Floyd–Warshall, O(n³).
//	NewDistanceTable(n) - an empty table the caller fills row by row
//	                      (the bfs package does this in O(n·(n+m))).
package matrix
