// SPDX-License-Identifier: MIT

package vf2_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch/builder"
	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/features"
	"github.com/katalvlaran/vfmatch/vf2"
)

// isoPair returns a seeded random digraph and a shuffled copy with the
// permutation mapping the first onto the second.
func isoPair(t *testing.T, seed int64, n int, p float64) (*core.Graph, *core.Graph, []int) {
	t.Helper()
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	h, perm, err := builder.Shuffle(g, rand.New(rand.NewSource(seed+1)))
	require.NoError(t, err)

	return g, h, perm
}

// newState builds a root state or fails the test.
func newState(t *testing.T, g1, g2 core.ARG, opts ...vf2.Option) *vf2.State {
	t.Helper()
	s, err := vf2.New(g1, g2, opts...)
	require.NoError(t, err)

	return s
}

// noFeatures is shorthand for plain structural matching.
func noFeatures() vf2.Option { return vf2.WithFeatures(features.None{}) }

// requireConsistent checks that CoreLen matches the number of mapped
// entries and that core1/core2 are mutual inverses.
func requireConsistent(t *testing.T, s *vf2.State) {
	t.Helper()
	snap := s.Snapshot()
	mapped := 0
	for i, m := range snap.Core1 {
		if m == vf2.NullNode {
			continue
		}
		mapped++
		require.Equal(t, i, snap.Core2[m], "core2[core1[%d]]", i)
		require.NotZero(t, snap.In1[i])
		require.NotZero(t, snap.Out1[i])
	}
	require.Equal(t, snap.CoreLen, mapped)

	mapped = 0
	for j, m := range snap.Core2 {
		if m == vf2.NullNode {
			continue
		}
		mapped++
		require.Equal(t, j, snap.Core1[m], "core1[core2[%d]]", j)
	}
	require.Equal(t, snap.CoreLen, mapped)
}

// expectedCandidates enumerates the candidate set by brute force from a
// snapshot: active tier, mirrored condition, feature equality.
func expectedCandidates(s *vf2.State) [][2]int {
	snap := s.Snapshot()
	l := snap.CoreLen
	var cond func(in, out int) bool
	switch {
	case snap.T1Both > l && snap.T2Both > l:
		cond = func(in, out int) bool { return in != 0 && out != 0 }
	case snap.T1Out > l && snap.T2Out > l:
		cond = func(_, out int) bool { return out != 0 }
	case snap.T1In > l && snap.T2In > l:
		cond = func(in, _ int) bool { return in != 0 }
	default:
		cond = func(_, _ int) bool { return true }
	}

	var out [][2]int
	for n1 := range snap.Core1 {
		if snap.Core1[n1] != vf2.NullNode || !cond(snap.In1[n1], snap.Out1[n1]) {
			continue
		}
		for n2 := range snap.Core2 {
			if snap.Core2[n2] != vf2.NullNode || !cond(snap.In2[n2], snap.Out2[n2]) {
				continue
			}
			if s.Features().Compatible(n1, n2) {
				out = append(out, [2]int{n1, n2})
			}
		}
	}

	return out
}

// drain calls NextPair from none to exhaustion.
func drain(s *vf2.State) [][2]int {
	var out [][2]int
	n1, n2 := vf2.NullNode, vf2.NullNode
	for {
		var ok bool
		if n1, n2, ok = s.NextPair(n1, n2); !ok {
			return out
		}
		out = append(out, [2]int{n1, n2})
	}
}
