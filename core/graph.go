// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// NewGraph returns an empty graph configured by opts.
//
// Options are applied left-to-right; nil comparators fall back to
// AlwaysCompatible.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.nodeCmp == nil {
		g.nodeCmp = AlwaysCompatible
	}
	if g.edgeCmp == nil {
		g.edgeCmp = AlwaysCompatible
	}

	return g
}

// NewGraphN returns a graph pre-populated with n attribute-less nodes.
func NewGraphN(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraphN(%d): %w", n, ErrNegativeCount)
	}
	g := NewGraph(opts...)
	g.AddNodes(n)

	return g, nil
}

// AddNode appends a node carrying attr and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(attr Attr) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(attr)
}

// AddNodes appends k attribute-less nodes and returns the index of the first
// one (equal to the previous NodeCount).
func (g *Graph) AddNodes(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.nodes)
	for i := 0; i < k; i++ {
		g.addNodeLocked(nil)
	}

	return first
}

func (g *Graph) addNodeLocked(attr Attr) int {
	g.nodes = append(g.nodes, attr)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return len(g.nodes) - 1
}

// SetNodeAttr replaces the attribute of node n.
func (g *Graph) SetNodeAttr(n int, attr Attr) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n < 0 || n >= len(g.nodes) {
		return fmt.Errorf("SetNodeAttr(%d): %w", n, ErrNodeOutOfRange)
	}
	g.nodes[n] = attr

	return nil
}

// AddEdge inserts the directed edge from -> to with attribute attr.
//
// Implementation:
//   - Stage 1: validate endpoints and the loop policy.
//   - Stage 2: binary-search the insertion point in out[from]; reject duplicates.
//   - Stage 3: insert into out[from] and in[to], keeping both rows sorted.
//
// Errors: ErrNodeOutOfRange, ErrLoopNotAllowed, ErrDuplicateEdge.
//
// Complexity: O(deg(from) + deg(to)) for the sorted inserts.
func (g *Graph) AddEdge(from, to int, attr Attr) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.nodes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrNodeOutOfRange)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	row := g.out[from]
	pos := sort.Search(len(row), func(i int) bool { return row[i].node >= to })
	if pos < len(row) && row[pos].node == to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrDuplicateEdge)
	}
	g.out[from] = insertAt(row, pos, halfEdge{node: to, attr: attr})

	col := g.in[to]
	pos = sort.Search(len(col), func(i int) bool { return col[i].node >= from })
	g.in[to] = insertAt(col, pos, halfEdge{node: from, attr: attr})

	g.edges++

	return nil
}

// insertAt inserts e at index pos, shifting the tail right.
func insertAt(row []halfEdge, pos int, e halfEdge) []halfEdge {
	row = append(row, halfEdge{})
	copy(row[pos+1:], row[pos:])
	row[pos] = e

	return row
}

// NodeCount reports the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// OutEdgeCount reports the out-degree of n.
func (g *Graph) OutEdgeCount(n int) int { return len(g.out[n]) }

// InEdgeCount reports the in-degree of n.
func (g *Graph) InEdgeCount(n int) int { return len(g.in[n]) }

// OutEdge returns the i-th successor of n (ascending index order) and the
// attribute of that edge.
func (g *Graph) OutEdge(n, i int) (int, Attr) {
	e := g.out[n][i]

	return e.node, e.attr
}

// InEdge returns the i-th predecessor of n (ascending index order) and the
// attribute of that edge.
func (g *Graph) InEdge(n, i int) (int, Attr) {
	e := g.in[n][i]

	return e.node, e.attr
}

// find locates to inside out[from]; ok is false when the edge is absent.
func (g *Graph) find(from, to int) (int, bool) {
	if from < 0 || from >= len(g.out) {
		return 0, false
	}
	row := g.out[from]
	pos := sort.Search(len(row), func(i int) bool { return row[i].node >= to })

	return pos, pos < len(row) && row[pos].node == to
}

// HasEdge reports whether from -> to exists. Out-of-range indices yield false.
// Complexity: O(log deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.find(from, to)

	return ok
}

// NodeAttr returns the attribute of node n.
func (g *Graph) NodeAttr(n int) Attr { return g.nodes[n] }

// EdgeAttr returns the attribute of from -> to, or nil if the edge is absent.
func (g *Graph) EdgeAttr(from, to int) Attr {
	pos, ok := g.find(from, to)
	if !ok {
		return nil
	}

	return g.out[from][pos].attr
}

// CompatibleNode applies the node comparator.
func (g *Graph) CompatibleNode(a, b Attr) bool { return g.nodeCmp(a, b) }

// CompatibleEdge applies the edge comparator.
func (g *Graph) CompatibleEdge(a, b Attr) bool { return g.edgeCmp(a, b) }

// Clone returns a deep copy of the topology. Attributes are copied by value
// (shared if they are pointers); comparators and the loop policy carry over.
func (g *Graph) Clone() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := &Graph{
		nodes:      append([]Attr(nil), g.nodes...),
		out:        make([][]halfEdge, len(g.out)),
		in:         make([][]halfEdge, len(g.in)),
		edges:      g.edges,
		allowLoops: g.allowLoops,
		nodeCmp:    g.nodeCmp,
		edgeCmp:    g.edgeCmp,
	}
	for i := range g.out {
		c.out[i] = append([]halfEdge(nil), g.out[i]...)
		c.in[i] = append([]halfEdge(nil), g.in[i]...)
	}

	return c
}

// Edges calls fn for every edge in (from, to) ascending order. Iteration
// stops early when fn returns false.
func (g *Graph) Edges(fn func(from, to int, attr Attr) bool) {
	for from, row := range g.out {
		for _, e := range row {
			if !fn(from, e.node, e.attr) {
				return
			}
		}
	}
}
