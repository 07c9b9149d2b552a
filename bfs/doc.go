// Package bfs provides breadth-first search over a core.ARG addressed by
// node index, returning unweighted shortest-path distances, parent links and
// visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Follow outgoing edges (default), incoming edges (WithDirection(In)) or
//     both (WithDirection(Both)).
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.ARG enumerates neighbours in a fixed order, and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = NodeCount, E = edges)
//
//   - Time:   O(V + E) per run
//   - Memory: O(V)
//
// DistanceTable runs one BFS per node and fills a matrix.Dense with the
// all-pairs distances (+Inf = unreachable); this is the cheap producer used
// for structural node features.
package bfs
