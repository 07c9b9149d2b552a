// SPDX-License-Identifier: MIT

package vf2

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

// tally counts the unmapped neighbours of a node in one direction by
// terminal class. A neighbour in both Tin and Tout counts in both.
type tally struct {
	termIn, termOut, fresh int
}

func (t *tally) add(in, out int) {
	if in != 0 {
		t.termIn++
	}
	if out != 0 {
		t.termOut++
	}
	if in == 0 && out == 0 {
		t.fresh++
	}
}

func (t tally) equal(u tally) bool {
	return t.termIn == u.termIn && t.termOut == u.termOut
}

func (t tally) within(u tally) bool {
	return t.termIn <= u.termIn && t.termOut <= u.termOut && t.fresh <= u.fresh
}

// IsFeasiblePair reports whether mapping n1 to n2 keeps the partial mapping
// consistent. Both nodes must be unmapped.
//
// Implementation:
//   - Stage 1: node attribute compatibility (graph-1 attribute first).
//   - Stage 2: degrees; equal in isomorphism mode, <= in subgraph mode.
//   - Stage 3: self-loops must agree.
//   - Stage 4: every mapped neighbour of n1 must map onto a neighbour of n2
//     through a compatible edge, and every mapped neighbour of n2 must be
//     the image of a neighbour of n1.
//   - Stage 5: look-ahead; in-/out-terminal tallies of the unmapped
//     out-neighbours and in-neighbours must agree (equal, or <= plus the
//     unreached tally in subgraph mode).
//
// The look-ahead is one step deep: it never rejects a pair that belongs to
// a valid mapping, but may accept pairs that later lead to dead states.
//
// Complexity: O(deg(n1)·log deg(n2) + deg(n2)·log deg(n1)).
func (s *State) IsFeasiblePair(n1, n2 int) bool {
	s.checkTop("IsFeasiblePair")
	s.check1("IsFeasiblePair", n1)
	s.check2("IsFeasiblePair", n2)
	a := s.a
	if a.core1[n1] != NullNode || a.core2[n2] != NullNode {
		panic(fmt.Errorf("vf2: IsFeasiblePair(%d,%d): node already mapped: %w", n1, n2, ErrPrecondition))
	}
	g1, g2 := a.g1, a.g2

	if !g1.CompatibleNode(g1.NodeAttr(n1), g2.NodeAttr(n2)) {
		return false
	}

	out1, in1 := g1.OutEdgeCount(n1), g1.InEdgeCount(n1)
	out2, in2 := g2.OutEdgeCount(n2), g2.InEdgeCount(n2)
	sub := a.mode == ModeSubgraph
	if sub {
		if out1 > out2 || in1 > in2 {
			return false
		}
	} else if out1 != out2 || in1 != in2 {
		return false
	}

	loop1, loop2 := g1.HasEdge(n1, n1), g2.HasEdge(n2, n2)
	if loop1 != loop2 {
		return false
	}
	if loop1 && !g1.CompatibleEdge(g1.EdgeAttr(n1, n1), g2.EdgeAttr(n2, n2)) {
		return false
	}

	var (
		other, m       int
		attr           core.Attr
		o1, i1, o2, i2 tally
	)

	for k := 0; k < out1; k++ {
		other, attr = g1.OutEdge(n1, k)
		if other == n1 {
			continue
		}
		if m = a.core1[other]; m != NullNode {
			if !g2.HasEdge(n2, m) || !g1.CompatibleEdge(attr, g2.EdgeAttr(n2, m)) {
				return false
			}
			continue
		}
		o1.add(a.in1[other], a.out1[other])
	}
	for k := 0; k < in1; k++ {
		other, attr = g1.InEdge(n1, k)
		if other == n1 {
			continue
		}
		if m = a.core1[other]; m != NullNode {
			if !g2.HasEdge(m, n2) || !g1.CompatibleEdge(attr, g2.EdgeAttr(m, n2)) {
				return false
			}
			continue
		}
		i1.add(a.in1[other], a.out1[other])
	}
	for k := 0; k < out2; k++ {
		other, _ = g2.OutEdge(n2, k)
		if other == n2 {
			continue
		}
		if m = a.core2[other]; m != NullNode {
			if !g1.HasEdge(n1, m) {
				return false
			}
			continue
		}
		o2.add(a.in2[other], a.out2[other])
	}
	for k := 0; k < in2; k++ {
		other, _ = g2.InEdge(n2, k)
		if other == n2 {
			continue
		}
		if m = a.core2[other]; m != NullNode {
			if !g1.HasEdge(m, n1) {
				return false
			}
			continue
		}
		i2.add(a.in2[other], a.out2[other])
	}

	if sub {
		return o1.within(o2) && i1.within(i2)
	}

	return o1.equal(o2) && i1.equal(i2)
}
