// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was used
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failing core call.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadPermutation indicates that a relabeling slice is not a permutation
// of [0, NodeCount).
var ErrBadPermutation = errors.New("builder: not a permutation")
