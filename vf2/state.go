// SPDX-License-Identifier: MIT

package vf2

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/dfs"
	"github.com/katalvlaran/vfmatch/features"
)

// arena owns every buffer shared by the states of one search path.
type arena struct {
	g1, g2 core.ARG
	n1, n2 int
	mode   Mode // resolved: never ModeAuto

	core1, core2 []int
	in1, out1    []int
	in2, out2    []int

	feat  *features.Vector
	order []int

	// depth is the core size the buffers currently reflect.
	depth int
}

// counters are the terminal-set cardinalities, core nodes included.
type counters struct {
	t1both, t1in, t1out int
	t2both, t2in, t2out int
}

// State is one checkpoint of the search over a shared arena.
type State struct {
	a           *arena
	coreLen     int
	origCoreLen int
	addedNode1  int
	cnt         counters
	saved       counters // counters before the pending AddPair
}

// New allocates the arena for matching g1 against g2 and returns the root
// state (CoreLen 0, all levels 0). Features are computed here, once.
//
// Implementation:
//   - Stage 1: resolve options; surface option errors.
//   - Stage 2: resolve ModeAuto against the node counts.
//   - Stage 3: compute features (equal sizes only) and the static order.
//   - Stage 4: allocate the six arrays.
//
// Errors: ErrGraphNil, ErrOptionViolation, or a wrapped feature error.
func New(g1, g2 core.ARG, opts ...Option) (*State, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n1, n2 := g1.NodeCount(), g2.NodeCount()
	a := &arena{g1: g1, g2: g2, n1: n1, n2: n2, mode: o.Mode}
	if a.mode == ModeAuto {
		if n1 == n2 {
			a.mode = ModeIsomorphism
		} else {
			a.mode = ModeSubgraph
		}
	}

	var err error
	if a.feat, err = features.Compute(g1, g2, o.Features); err != nil {
		return nil, fmt.Errorf("vf2: New: %w", err)
	}

	switch {
	case len(o.Order) > 0:
		if err = validOrder(o.Order, n1); err != nil {
			return nil, err
		}
		a.order = o.Order
	case o.SortNodes:
		a.order = SortNodes(g1)
	case o.ConnectedOrder:
		a.order = dfs.ConnectedOrder(g1)
	}

	a.core1 = filled(n1, NullNode)
	a.core2 = filled(n2, NullNode)
	a.in1, a.out1 = make([]int, n1), make([]int, n1)
	a.in2, a.out2 = make([]int, n2), make([]int, n2)

	return &State{a: a, addedNode1: NullNode}, nil
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

func validOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: order has %d entries for %d nodes", ErrOptionViolation, len(order), n)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: order is not a permutation (entry %d)", ErrOptionViolation, v)
		}
		seen[v] = true
	}

	return nil
}

// Clone pushes a checkpoint: the child shares the arena, starts at this
// state's core size and has nothing to undo.
func (s *State) Clone() *State {
	c := *s
	c.origCoreLen = s.coreLen
	c.addedNode1 = NullNode
	c.saved = counters{}

	return &c
}

// CoreLen is the size of the current partial mapping.
func (s *State) CoreLen() int { return s.coreLen }

// Mode reports the resolved matching problem.
func (s *State) Mode() Mode { return s.a.mode }

// Features returns the shared feature table, or nil when absent.
func (s *State) Features() *features.Vector { return s.a.feat }

// Order returns the static visit order, or nil. The slice must not be
// modified.
func (s *State) Order() []int { return s.a.order }

// NodeCounts returns the node counts of graph 1 and graph 2.
func (s *State) NodeCounts() (int, int) { return s.a.n1, s.a.n2 }

// IsGoal reports a complete mapping: every node of graph 1 mapped, and in
// isomorphism mode every node of graph 2 too.
func (s *State) IsGoal() bool {
	if s.a.mode == ModeSubgraph {
		return s.coreLen == s.a.n1
	}

	return s.coreLen == s.a.n1 && s.coreLen == s.a.n2
}

// IsDead reports that the partial mapping cannot be completed.
func (s *State) IsDead() bool {
	a, c := s.a, s.cnt
	if a.mode == ModeSubgraph {
		return a.n1 > a.n2 ||
			c.t1both > c.t2both ||
			c.t1out > c.t2out ||
			c.t1in > c.t2in
	}

	return a.n1 != a.n2 || c.t1both != c.t2both
}

// CoreSet writes the mapped pairs in ascending graph-1 order into c1/c2 and
// returns their number. Both slices must hold at least CoreLen entries.
func (s *State) CoreSet(c1, c2 []int) int {
	s.checkTop("CoreSet")
	if len(c1) < s.coreLen || len(c2) < s.coreLen {
		panic(fmt.Errorf("vf2: CoreSet: buffers %d/%d for %d pairs: %w",
			len(c1), len(c2), s.coreLen, ErrPrecondition))
	}
	k := 0
	for i, m := range s.a.core1 {
		if m != NullNode {
			c1[k], c2[k] = i, m
			k++
		}
	}

	return k
}

// Mapped returns the graph-2 image of graph-1 node n1, or NullNode.
func (s *State) Mapped(n1 int) int {
	s.checkTop("Mapped")
	s.check1("Mapped", n1)

	return s.a.core1[n1]
}

// checkTop panics unless this state is the one the arena currently reflects.
func (s *State) checkTop(op string) {
	if s.a.depth != s.coreLen {
		panic(fmt.Errorf("vf2: %s: state at depth %d while buffers are at %d: %w",
			op, s.coreLen, s.a.depth, ErrStackDiscipline))
	}
}

func (s *State) check1(op string, n int) {
	if n < 0 || n >= s.a.n1 {
		panic(fmt.Errorf("vf2: %s: graph-1 node %d not in [0,%d): %w", op, n, s.a.n1, ErrPrecondition))
	}
}

func (s *State) check2(op string, n int) {
	if n < 0 || n >= s.a.n2 {
		panic(fmt.Errorf("vf2: %s: graph-2 node %d not in [0,%d): %w", op, n, s.a.n2, ErrPrecondition))
	}
}

// Snapshot is a deep copy of the observable search state, for diagnostics
// and tests.
type Snapshot struct {
	CoreLen              int
	Core1, Core2         []int
	In1, Out1, In2, Out2 []int
	T1Both, T1In, T1Out  int
	T2Both, T2In, T2Out  int
}

// Snapshot copies the buffers and counters.
func (s *State) Snapshot() Snapshot {
	a := s.a
	cp := func(v []int) []int { return append([]int(nil), v...) }

	return Snapshot{
		CoreLen: s.coreLen,
		Core1:   cp(a.core1), Core2: cp(a.core2),
		In1: cp(a.in1), Out1: cp(a.out1),
		In2: cp(a.in2), Out2: cp(a.out2),
		T1Both: s.cnt.t1both, T1In: s.cnt.t1in, T1Out: s.cnt.t1out,
		T2Both: s.cnt.t2both, T2In: s.cnt.t2in, T2Out: s.cnt.t2out,
	}
}
