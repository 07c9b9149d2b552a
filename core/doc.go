// SPDX-License-Identifier: MIT

// Package core defines the attributed relational graph (ARG) consumed by the
// matcher, and a compact index-addressed implementation of it.
//
// Nodes are identified by a zero-based index in [0, NodeCount). Edges are
// directed and carry an optional attribute; nodes carry an optional
// attribute. Attribute compatibility is decided by two predicates,
// CompatibleNode and CompatibleEdge, which the matcher always invokes on the
// pattern graph (graph 1) with the pattern attribute first. Compatibility
// need not be symmetric.
//
// Concurrency model:
//
//	Mutations (AddNode, AddEdge, SetNodeAttr) are serialized by an internal
//	mutex. The read surface of ARG is lock-free: build the graph first, then
//	share it read-only across any number of concurrent match attempts.
//
// Complexity quicksheet:
//
//	AddNode O(1) amortized; AddEdge O(deg) (sorted insert); HasEdge and
//	EdgeAttr O(log deg); OutEdge/InEdge O(1).
package core
