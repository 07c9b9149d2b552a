// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vfmatch/core"
)

const (
	methodRelabel = "Relabel"
	methodInduced = "Induced"
)

// Relabel returns the isomorphic copy of g in which node i becomes perm[i].
// Node and edge attributes travel with their node/edge. gopts configure the
// new graph (self-loops are always permitted so loops survive).
//
// Complexity: O(V + E log deg).
func Relabel(g core.ARG, perm []int, gopts ...core.GraphOption) (*core.Graph, error) {
	n := g.NodeCount()
	if err := checkPermutation(perm, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRelabel, err)
	}

	h, err := core.NewGraphN(n, append([]core.GraphOption{core.WithLoops()}, gopts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRelabel, err)
	}
	for i := 0; i < n; i++ {
		if err = h.SetNodeAttr(perm[i], g.NodeAttr(i)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRelabel, err)
		}
	}
	var (
		to   int
		attr core.Attr
	)
	for from := 0; from < n; from++ {
		for k := 0; k < g.OutEdgeCount(from); k++ {
			to, attr = g.OutEdge(from, k)
			if err = h.AddEdge(perm[from], perm[to], attr); err != nil {
				return nil, wrapCore(methodRelabel, perm[from], perm[to], err)
			}
		}
	}

	return h, nil
}

// Shuffle relabels g with a permutation drawn from r and returns both.
func Shuffle(g core.ARG, r *rand.Rand, gopts ...core.GraphOption) (*core.Graph, []int, error) {
	if r == nil {
		return nil, nil, fmt.Errorf("Shuffle: %w", ErrNeedRandSource)
	}
	perm := r.Perm(g.NodeCount())
	h, err := Relabel(g, perm, gopts...)
	if err != nil {
		return nil, nil, err
	}

	return h, perm, nil
}

// Induced returns the subgraph of g induced by nodes: new node k is
// nodes[k], and every edge of g between two selected nodes is kept.
func Induced(g core.ARG, nodes []int, gopts ...core.GraphOption) (*core.Graph, error) {
	n := g.NodeCount()
	index := make(map[int]int, len(nodes))
	for k, v := range nodes {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%s: node %d: %w", methodInduced, v, core.ErrNodeOutOfRange)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%s: node %d twice: %w", methodInduced, v, ErrBadPermutation)
		}
		index[v] = k
	}

	h := core.NewGraph(append([]core.GraphOption{core.WithLoops()}, gopts...)...)
	for _, v := range nodes {
		h.AddNode(g.NodeAttr(v))
	}
	var (
		to   int
		attr core.Attr
	)
	for k, from := range nodes {
		for e := 0; e < g.OutEdgeCount(from); e++ {
			to, attr = g.OutEdge(from, e)
			if j, ok := index[to]; ok {
				if err := h.AddEdge(k, j, attr); err != nil {
					return nil, wrapCore(methodInduced, k, j, err)
				}
			}
		}
	}

	return h, nil
}

func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("len=%d, want %d: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("entry %d: %w", p, ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}
