// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrDuplicateEdge indicates an attempt to add a parallel edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeCount indicates a negative node count at construction.
	ErrNegativeCount = errors.New("core: negative node count")
)

// Attr is an opaque node or edge attribute. Nil means "no attribute".
type Attr = any

// Comparator decides whether attribute a (graph 1) is compatible with
// attribute b (graph 2).
type Comparator func(a, b Attr) bool

// ARG is the read-only attributed directed graph the matcher works on.
//
// OutEdge returns the i-th successor of n with the edge attribute;
// InEdge returns the i-th predecessor of n with the edge attribute.
// For i outside [0, OutEdgeCount(n)) (resp. InEdgeCount) implementations
// may panic.
type ARG interface {
	NodeCount() int
	OutEdgeCount(n int) int
	InEdgeCount(n int) int
	OutEdge(n, i int) (int, Attr)
	InEdge(n, i int) (int, Attr)
	HasEdge(from, to int) bool
	NodeAttr(n int) Attr
	EdgeAttr(from, to int) Attr
	CompatibleNode(a, b Attr) bool
	CompatibleEdge(a, b Attr) bool
}

// halfEdge is one entry of an adjacency row: the opposite endpoint plus the
// edge attribute. Rows are kept sorted by node.
type halfEdge struct {
	node int
	attr Attr
}

// Graph is the default ARG implementation.
//
// out[n] and in[n] are sorted by neighbour index, so HasEdge is a binary
// search and enumeration order is deterministic.
type Graph struct {
	mu sync.Mutex // serializes mutations only

	nodes []Attr
	out   [][]halfEdge
	in    [][]halfEdge
	edges int

	allowLoops bool
	nodeCmp    Comparator
	edgeCmp    Comparator
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithLoops permits self-loops (n -> n). Disabled by default.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNodeComparator installs the node compatibility predicate.
// A nil comparator restores the default.
func WithNodeComparator(cmp Comparator) GraphOption {
	return func(g *Graph) { g.nodeCmp = cmp }
}

// WithEdgeComparator installs the edge compatibility predicate.
// A nil comparator restores the default.
func WithEdgeComparator(cmp Comparator) GraphOption {
	return func(g *Graph) { g.edgeCmp = cmp }
}

// AlwaysCompatible accepts every pair of attributes. It is the default for
// both nodes and edges, which makes the match purely structural.
func AlwaysCompatible(_, _ Attr) bool { return true }

// EqualAttrs treats two attributes as compatible when they are == equal.
// Attributes must be comparable.
func EqualAttrs(a, b Attr) bool { return a == b }

// Compile-time assertion.
var _ ARG = (*Graph)(nil)
