// SPDX-License-Identifier: MIT

package vf2

// tier is the candidate class selected by the terminal-set pressure.
type tier int

const (
	tierBoth tier = iota // unmapped nodes in both Tin and Tout
	tierOut              // unmapped nodes in Tout
	tierIn               // unmapped nodes in Tin
	tierFree             // no terminal pressure: any unmapped node
)

// activeTier picks the first tier with surplus on both sides.
func (s *State) activeTier() tier {
	c, l := s.cnt, s.coreLen
	switch {
	case c.t1both > l && c.t2both > l:
		return tierBoth
	case c.t1out > l && c.t2out > l:
		return tierOut
	case c.t1in > l && c.t2in > l:
		return tierIn
	default:
		return tierFree
	}
}

func eligible(t tier, core, in, out []int, n int) bool {
	if core[n] != NullNode {
		return false
	}
	switch t {
	case tierBoth:
		return in[n] != 0 && out[n] != 0
	case tierOut:
		return out[n] != 0
	case tierIn:
		return in[n] != 0
	default:
		return true
	}
}

// NextPair returns the candidate pair following (prev1, prev2), or ok=false
// when the active tier is exhausted. Pass (NullNode, NullNode) to start.
//
// Candidates are unmapped pairs (n1, n2) such that n1 satisfies the active
// tier's terminal condition on graph 1, n2 satisfies it on graph 2 and,
// when features exist, their features are equal. They are produced in
// ascending (n1, n2) order, each exactly once; when n2 is exhausted the
// sweep moves to the next eligible n1.
//
// In the free tier with a static order, n1 is fixed to the first unmapped
// node of the order and only n2 advances.
//
// Complexity: O(n1 + n2) per call in the worst case.
func (s *State) NextPair(prev1, prev2 int) (int, int, bool) {
	s.checkTop("NextPair")
	a := s.a
	t := s.activeTier()

	start2 := 0
	if prev2 != NullNode {
		start2 = prev2 + 1
	}

	if t == tierFree && a.order != nil {
		n1 := NullNode
		for _, v := range a.order {
			if a.core1[v] == NullNode {
				n1 = v
				break
			}
		}
		if n1 == NullNode || (prev1 != NullNode && prev1 != n1) {
			return NullNode, NullNode, false
		}
		if n2, ok := s.scan2(t, n1, start2); ok {
			return n1, n2, true
		}

		return NullNode, NullNode, false
	}

	n1 := 0
	if prev1 != NullNode {
		n1 = prev1
	}
	for ; n1 < a.n1; n1++ {
		if eligible(t, a.core1, a.in1, a.out1, n1) {
			if n2, ok := s.scan2(t, n1, start2); ok {
				return n1, n2, true
			}
		}
		start2 = 0
	}

	return NullNode, NullNode, false
}

// scan2 finds the first graph-2 node >= from that pairs with n1.
func (s *State) scan2(t tier, n1, from int) (int, bool) {
	a := s.a
	for n2 := from; n2 < a.n2; n2++ {
		if eligible(t, a.core2, a.in2, a.out2, n2) && a.feat.Compatible(n1, n2) {
			return n2, true
		}
	}

	return NullNode, false
}
