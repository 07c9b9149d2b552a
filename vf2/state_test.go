// SPDX-License-Identifier: MIT

package vf2_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch/builder"
	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/features"
	"github.com/katalvlaran/vfmatch/vf2"
)

func TestNewErrors(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(3))
	_, err := vf2.New(nil, g)
	assert.ErrorIs(t, err, vf2.ErrGraphNil)
	_, err = vf2.New(g, g, vf2.WithMode(vf2.Mode(42)))
	assert.ErrorIs(t, err, vf2.ErrOptionViolation)
	_, err = vf2.New(g, g, vf2.WithNodeOrder([]int{0, 0, 1}))
	assert.ErrorIs(t, err, vf2.ErrOptionViolation)
	_, err = vf2.New(g, g, vf2.WithNodeOrder([]int{0, 1}))
	assert.ErrorIs(t, err, vf2.ErrOptionViolation)
}

func TestRootState(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	s := newState(t, g, g)

	assert.Equal(t, 0, s.CoreLen())
	assert.Equal(t, vf2.ModeIsomorphism, s.Mode())
	assert.False(t, s.IsGoal())
	assert.False(t, s.IsDead())
	assert.NotNil(t, s.Features())

	snap := s.Snapshot()
	for i := 0; i < 4; i++ {
		assert.Equal(t, vf2.NullNode, snap.Core1[i])
		assert.Zero(t, snap.In1[i]+snap.Out1[i]+snap.In2[i]+snap.Out2[i])
	}
}

func TestModeResolution(t *testing.T) {
	small := builder.MustBuild(nil, builder.Path(2))
	large := builder.MustBuild(nil, builder.Cycle(4))

	assert.Equal(t, vf2.ModeSubgraph, newState(t, small, large).Mode())
	assert.Nil(t, newState(t, small, large).Features())

	iso := newState(t, small, large, vf2.WithMode(vf2.ModeIsomorphism))
	assert.True(t, iso.IsDead(), "sizes differ")

	sub := newState(t, large, small)
	assert.True(t, sub.IsDead(), "pattern larger than host")

	for in, want := range map[string]vf2.Mode{"": vf2.ModeAuto, "iso": vf2.ModeIsomorphism, "subgraph": vf2.ModeSubgraph} {
		m, err := vf2.ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, m)
		assert.NotEmpty(t, m.String())
	}
	_, err := vf2.ParseMode("approx")
	assert.ErrorIs(t, err, vf2.ErrOptionViolation)
}

func TestEmptyGraphsAreGoal(t *testing.T) {
	empty := core.NewGraph()
	s := newState(t, empty, empty)
	assert.True(t, s.IsGoal())
	assert.False(t, s.IsDead())
	assert.Equal(t, 0, s.CoreSet(nil, nil))
}

// AddPair followed by BackTrack restores every buffer and counter.
func TestAddPairBackTrackIsExactInverse(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g1, g2, perm := isoPair(t, seed, 12, 0.2)
		s := newState(t, g1, g2, noFeatures())
		r := rand.New(rand.NewSource(seed))

		// Walk down the true isomorphism in random order, checking the
		// inverse property at every depth.
		stack := []*vf2.State{s}
		for _, n1 := range r.Perm(12) {
			top := stack[len(stack)-1]
			before := top.Snapshot()

			probe := top.Clone()
			probe.AddPair(n1, perm[n1])
			requireConsistent(t, probe)
			probe.BackTrack()
			require.Equal(t, before, top.Snapshot(), "seed %d node %d", seed, n1)

			child := top.Clone()
			child.AddPair(n1, perm[n1])
			stack = append(stack, child)
		}
		top := stack[len(stack)-1]
		require.True(t, top.IsGoal())

		// Unwind completely: the root is back to all zeros.
		for i := len(stack) - 1; i > 0; i-- {
			stack[i].BackTrack()
		}
		require.Equal(t, newState(t, g1, g2, noFeatures()).Snapshot(), s.Snapshot())
	}
}

func TestBackTrackWithoutAddIsNoop(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(3))
	s := newState(t, g, g)
	c := s.Clone()
	c.BackTrack()
	assert.Equal(t, s.Snapshot(), c.Snapshot())
}

func TestCoreSetAndMapped(t *testing.T) {
	g1, g2, perm := isoPair(t, 3, 6, 0.3)
	s := newState(t, g1, g2, noFeatures())
	c := s.Clone()
	c.AddPair(4, perm[4])
	d := c.Clone()
	d.AddPair(1, perm[1])

	c1, c2 := make([]int, 6), make([]int, 6)
	k := d.CoreSet(c1, c2)
	require.Equal(t, 2, k)
	assert.Equal(t, []int{1, 4}, c1[:k])
	assert.Equal(t, []int{perm[1], perm[4]}, c2[:k])
	assert.Equal(t, perm[4], d.Mapped(4))
	assert.Equal(t, vf2.NullNode, d.Mapped(0))
}

func TestStackDiscipline(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	s := newState(t, g, g, noFeatures())

	a := s.Clone()
	b := s.Clone()
	a.AddPair(0, 0)

	assert.PanicsWithError(t,
		"vf2: AddPair: state at depth 0 while buffers are at 1: vf2: stack discipline violated",
		func() { b.AddPair(1, 1) }, "sibling with pending sibling")
	assert.Panics(t, func() { s.NextPair(vf2.NullNode, vf2.NullNode) }, "parent read under pending child")
	assert.Panics(t, func() { a.AddPair(1, 1) }, "second pending pair")

	a.BackTrack()
	assert.NotPanics(t, func() { b.AddPair(1, 1) })
	b.BackTrack()
	assert.NotPanics(t, func() { s.NextPair(vf2.NullNode, vf2.NullNode) })
}

func TestPreconditions(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	s := newState(t, g, g, noFeatures())

	assert.Panics(t, func() { s.IsFeasiblePair(4, 0) })
	assert.Panics(t, func() { s.IsFeasiblePair(0, -2) })
	assert.Panics(t, func() { s.Clone().AddPair(7, 0) })

	c := s.Clone()
	c.AddPair(0, 0)
	d := c.Clone()
	assert.Panics(t, func() { d.IsFeasiblePair(0, 1) }, "n1 mapped")
	assert.Panics(t, func() { d.AddPair(1, 0) }, "n2 mapped")
	assert.Panics(t, func() { d.CoreSet(make([]int, 0), make([]int, 0)) })
}

func TestSortNodes(t *testing.T) {
	// Star hub 0 -> 1,2,3 plus a path tail 4 -> 5.
	g := builder.MustBuild(nil, builder.Star(4), builder.Path(2))
	// Profiles: hub (0,3) x1, leaves (1,0) x3, 4 (0,1) x1, 5 (1,0) → leaves x4.
	assert.Equal(t, []int{0, 4, 1, 2, 3, 5}, vf2.SortNodes(g))

	s := newState(t, g, g, vf2.WithSortedNodes())
	assert.Equal(t, []int{0, 4, 1, 2, 3, 5}, s.Order())
}

func TestConnectedOrder(t *testing.T) {
	g, err := core.NewGraphN(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(3, 0, nil))
	require.NoError(t, g.AddEdge(3, 2, nil))
	require.NoError(t, g.AddEdge(2, 1, nil))

	s := newState(t, g, g, vf2.WithConnectedOrder())
	assert.Equal(t, []int{0, 3, 2, 1}, s.Order())

	// explicit orders take precedence
	s = newState(t, g, g, vf2.WithConnectedOrder(), vf2.WithNodeOrder([]int{1, 0, 2, 3}))
	assert.Equal(t, []int{1, 0, 2, 3}, s.Order())
}

func TestFeaturePolicyDefaultsToPartition(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(3))
	s := newState(t, g, g)
	require.NotNil(t, s.Features())
	assert.Equal(t, "partition", s.Features().Policy().Name())

	d, _ := features.NewDecay()
	s = newState(t, g, g, vf2.WithFeatures(d))
	assert.Equal(t, "decay", s.Features().Policy().Name())

	s = newState(t, g, g, vf2.WithFeatures(nil))
	assert.Nil(t, s.Features())
}
