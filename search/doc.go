// Package search is the depth-first driver of the state-space matcher.
//
// Match is generic over the State capability (NextPair, IsFeasiblePair,
// AddPair, BackTrack, IsGoal, IsDead, Clone, CoreLen, CoreSet), so any
// partial-mapping state obeying that contract can be searched:
//
//	visit(s):
//	  if s.IsGoal()  → record the mapping, stop (first match)
//	  if s.IsDead()  → fail this branch
//	  for (n1, n2) in s.NextPair sequence:
//	    if s.IsFeasiblePair(n1, n2):
//	      c := s.Clone(); c.AddPair(n1, n2)
//	      found := visit(c)
//	      c.BackTrack()
//	      if found → stop
//	  fail
//
// Every child is backtracked on the way up, including the successful one,
// so the root state is reusable after Match returns.
//
// Anchor pruning (on by default): every goal maps every graph-1 node, so
// the first n1 proposed at a state must be mapped by some candidate of that
// same n1. Once the candidates of the first n1 are exhausted the state has
// failed, and the remaining n1 values are not branched.
//
// Cancellation: ctx is polled between candidate attempts; an optional time
// limit is checked every 1024 candidates. Both abort with an error and leave
// the statistics gathered so far in the Result.
package search
