// SPDX-License-Identifier: MIT

package vf2

import "fmt"

// AddPair maps n1 to n2. The pair must have passed IsFeasiblePair; a state
// may add exactly one pair between Clone and BackTrack.
//
// Implementation:
//   - Stage 1: check ranges, that both nodes are unmapped and that nothing
//     is pending on this state.
//   - Stage 2: bump the core size and the arena depth.
//   - Stage 3: give n1, n2 both levels and their in-/out-neighbours the
//     matching level, where unset, updating the counters.
//
// Complexity: O(deg(n1) + deg(n2)).
func (s *State) AddPair(n1, n2 int) {
	s.checkTop("AddPair")
	s.check1("AddPair", n1)
	s.check2("AddPair", n2)
	a := s.a
	if s.coreLen != s.origCoreLen {
		panic(fmt.Errorf("vf2: AddPair(%d,%d): a pair is already pending: %w", n1, n2, ErrStackDiscipline))
	}
	if a.core1[n1] != NullNode || a.core2[n2] != NullNode {
		panic(fmt.Errorf("vf2: AddPair(%d,%d): node already mapped: %w", n1, n2, ErrPrecondition))
	}

	s.saved = s.cnt
	s.coreLen++
	s.addedNode1 = n1
	a.depth = s.coreLen
	lvl := s.coreLen
	c := &s.cnt

	enter(a.in1, a.out1, n1, lvl, &c.t1in, &c.t1both)
	enter(a.out1, a.in1, n1, lvl, &c.t1out, &c.t1both)
	enter(a.in2, a.out2, n2, lvl, &c.t2in, &c.t2both)
	enter(a.out2, a.in2, n2, lvl, &c.t2out, &c.t2both)

	a.core1[n1] = n2
	a.core2[n2] = n1

	var other int
	for i := 0; i < a.g1.InEdgeCount(n1); i++ {
		other, _ = a.g1.InEdge(n1, i)
		enter(a.in1, a.out1, other, lvl, &c.t1in, &c.t1both)
	}
	for i := 0; i < a.g1.OutEdgeCount(n1); i++ {
		other, _ = a.g1.OutEdge(n1, i)
		enter(a.out1, a.in1, other, lvl, &c.t1out, &c.t1both)
	}
	for i := 0; i < a.g2.InEdgeCount(n2); i++ {
		other, _ = a.g2.InEdge(n2, i)
		enter(a.in2, a.out2, other, lvl, &c.t2in, &c.t2both)
	}
	for i := 0; i < a.g2.OutEdgeCount(n2); i++ {
		other, _ = a.g2.OutEdge(n2, i)
		enter(a.out2, a.in2, other, lvl, &c.t2out, &c.t2both)
	}
}

// enter sets level[n] = lvl if unset, counting n in the set and, when the
// opposite level is already set, in the both-terminal set.
func enter(level, opposite []int, n, lvl int, t, both *int) {
	if level[n] != 0 {
		return
	}
	level[n] = lvl
	*t++
	if opposite[n] != 0 {
		*both++
	}
}

// BackTrack undoes the pair added since Clone, if any: every level equal to
// the current core size is cleared, the core entries are reset and the
// counters restored. The buffers end up bit-for-bit as before AddPair.
//
// Complexity: O(deg(n1) + deg(n2)).
func (s *State) BackTrack() {
	if s.addedNode1 == NullNode {
		return
	}
	s.checkTop("BackTrack")
	a := s.a
	n1 := s.addedNode1
	n2 := a.core1[n1]
	lvl := s.coreLen

	leave(a.in1, n1, lvl)
	leave(a.out1, n1, lvl)
	leave(a.in2, n2, lvl)
	leave(a.out2, n2, lvl)

	var other int
	for i := 0; i < a.g1.InEdgeCount(n1); i++ {
		other, _ = a.g1.InEdge(n1, i)
		leave(a.in1, other, lvl)
	}
	for i := 0; i < a.g1.OutEdgeCount(n1); i++ {
		other, _ = a.g1.OutEdge(n1, i)
		leave(a.out1, other, lvl)
	}
	for i := 0; i < a.g2.InEdgeCount(n2); i++ {
		other, _ = a.g2.InEdge(n2, i)
		leave(a.in2, other, lvl)
	}
	for i := 0; i < a.g2.OutEdgeCount(n2); i++ {
		other, _ = a.g2.OutEdge(n2, i)
		leave(a.out2, other, lvl)
	}

	a.core1[n1] = NullNode
	a.core2[n2] = NullNode

	s.cnt = s.saved
	s.saved = counters{}
	s.coreLen = s.origCoreLen
	s.addedNode1 = NullNode
	a.depth = s.coreLen
}

func leave(level []int, n, lvl int) {
	if level[n] == lvl {
		level[n] = 0
	}
}
