// SPDX-License-Identifier: MIT

// Package vf2 implements the partial-mapping state of the VF2 (sub)graph
// isomorphism algorithm.
//
// A State is a checkpoint over one arena holding the mapping arrays
// (core1/core2), the terminal levels (in1/out1/in2/out2), the feature table
// and the optional static visit order. Every state of one search path shares
// the arena:
//
//	Clone      pushes a checkpoint (O(1), nothing is copied)
//	AddPair    extends the mapping by one pair, O(deg(n1)+deg(n2))
//	BackTrack  pops back to the checkpoint, exact inverse of AddPair
//
// Only the state whose depth equals the arena depth may read or mutate the
// buffers. The arena tracks that depth and panics with ErrStackDiscipline on
// any out-of-order access, so a misbehaving driver fails loudly instead of
// corrupting the mapping.
//
// Terminal levels: 0 means "not yet reachable"; otherwise the core size at
// which the node first became a predecessor (in) or successor (out) of the
// mapped core. Mapped nodes always carry both levels. The t* counters count
// nodes with a nonzero level, core nodes included, so the frontier size is
// t* - CoreLen().
//
// Modes:
//
//	ModeIsomorphism  n1 == n2, degrees and look-ahead tallies must match exactly
//	ModeSubgraph     induced subgraph isomorphism of graph 1 into graph 2,
//	                 degrees and tallies compared with <=
//	ModeAuto         isomorphism when sizes are equal, subgraph otherwise
//
// Programming errors (out-of-range nodes, re-mapping a mapped node, a second
// AddPair on one state, stack violations) panic with an error wrapping
// ErrPrecondition or ErrStackDiscipline. Negative outcomes (dead states,
// exhausted candidates) are ordinary return values.
package vf2
