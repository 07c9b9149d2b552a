// SPDX-License-Identifier: MIT

package vf2_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch/builder"
	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/vf2"
)

// flipEdge returns a copy of g with the edge u->v toggled.
func flipEdge(t *testing.T, g *core.Graph, u, v int) *core.Graph {
	t.Helper()
	h, err := core.NewGraphN(g.NodeCount())
	require.NoError(t, err)
	g.Edges(func(from, to int, attr core.Attr) bool {
		if from != u || to != v {
			require.NoError(t, h.AddEdge(from, to, attr))
		}
		return true
	})
	if !g.HasEdge(u, v) {
		require.NoError(t, h.AddEdge(u, v, nil))
	}

	return h
}

// Pairs of a true isomorphism are always feasible; after toggling one
// edge between the image of an unmapped node and the image of one of its
// mapped neighbours, that pair must be rejected.
func TestFeasibilityMutationFuzz(t *testing.T) {
	rejected := 0
	for seed := int64(100); seed < 160; seed++ {
		const n = 9
		g1, g2, perm := isoPair(t, seed, n, 0.3)
		r := rand.New(rand.NewSource(seed))

		order := r.Perm(n)
		k := 1 + r.Intn(n-2)
		mapped, target := order[:k], order[k]

		// Find a graph-1 neighbour of target among the mapped nodes, or any
		// mapped node: toggling an absent edge creates one.
		m := mapped[r.Intn(len(mapped))]
		u, v := perm[target], perm[m]
		if r.Intn(2) == 0 {
			u, v = v, u
		}

		replay := func(host *core.Graph) *vf2.State {
			s := newState(t, g1, host, noFeatures())
			for _, x := range mapped {
				c := s.Clone()
				c.AddPair(x, perm[x])
				s = c
			}
			return s
		}

		require.True(t, replay(g2).IsFeasiblePair(target, perm[target]),
			"seed %d: true pair rejected", seed)

		mutated := flipEdge(t, g2, u, v)
		assert.False(t, replay(mutated).IsFeasiblePair(target, perm[target]),
			"seed %d: inconsistent pair accepted (flip %d->%d)", seed, u, v)
		rejected++
	}
	assert.Equal(t, 60, rejected)
}

func TestFeasibleAttributes(t *testing.T) {
	mk := func(labels []string, edgeAttr string) *core.Graph {
		g := core.NewGraph(
			core.WithNodeComparator(core.EqualAttrs),
			core.WithEdgeComparator(core.EqualAttrs),
		)
		for _, l := range labels {
			g.AddNode(l)
		}
		require.NoError(t, g.AddEdge(0, 1, edgeAttr))
		require.NoError(t, g.AddEdge(1, 0, edgeAttr))
		return g
	}

	g1 := mk([]string{"a", "b"}, "x")
	s := newState(t, g1, mk([]string{"b", "a"}, "x"), noFeatures())
	assert.False(t, s.IsFeasiblePair(0, 0), "node labels differ")
	assert.True(t, s.IsFeasiblePair(0, 1))

	s = newState(t, g1, mk([]string{"a", "b"}, "y"), noFeatures())
	c := s.Clone()
	c.AddPair(0, 0)
	assert.False(t, c.Clone().IsFeasiblePair(1, 1), "edge labels differ")
}

func TestFeasibleSelfLoops(t *testing.T) {
	looped := core.NewGraph(core.WithLoops())
	looped.AddNodes(2)
	require.NoError(t, looped.AddEdge(0, 0, nil))
	require.NoError(t, looped.AddEdge(0, 1, nil))

	plain := core.NewGraph(core.WithLoops())
	plain.AddNodes(2)
	require.NoError(t, plain.AddEdge(1, 1, nil))
	require.NoError(t, plain.AddEdge(1, 0, nil))

	s := newState(t, looped, plain, noFeatures())
	assert.False(t, s.IsFeasiblePair(0, 0))
	assert.True(t, s.IsFeasiblePair(0, 1))
}

func TestFeasibleSubgraphIsInduced(t *testing.T) {
	// Pattern: 0 -> 1 without the back edge; host: 2-cycle. Induced
	// matching must reject the second pair.
	pattern := builder.MustBuild(nil, builder.Path(2))
	host := builder.MustBuild([]builder.BuilderOption{builder.WithSymmetric()}, builder.Path(2), builder.Path(1))
	s := newState(t, pattern, host)
	require.Equal(t, vf2.ModeSubgraph, s.Mode())

	c := s.Clone()
	require.True(t, c.IsFeasiblePair(0, 0))
	c.AddPair(0, 0)
	assert.False(t, c.Clone().IsFeasiblePair(1, 1), "host has 1->0, pattern does not")
}
