// Package features computes per-node structural invariants that the matcher
// compares before any edge check.
//
// A feature is a necessary condition: under any isomorphism between two
// equal-size graphs, every node carries the same feature as its image. The
// matcher therefore never proposes a pair whose features differ, which
// collapses large parts of the search tree for free.
//
// Policies
//
//   - Partition: exact. For each node, the histogram of shortest-path
//     distances to every other node (row) and from every other node
//     (column). Nodes whose two histograms coincide share a class id; ids are
//     assigned greedily to the first representative in graph-1 node order.
//   - Decay: approximate. For each node, #unreachable + Σ exp(-d/n) over the
//     nodes reachable at distance d>0 along outgoing edges. Compared with an
//     absolute tolerance (1e-8 by default).
//   - None: no features; the matcher falls back to structural pruning only.
//
// Features exist only when both graphs have the same node count; Compute
// returns a nil *Vector otherwise, and every feature filter is skipped.
package features
