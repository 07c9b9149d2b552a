package features

import (
	"errors"

	"github.com/katalvlaran/vfmatch/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when either graph is nil.
	ErrGraphNil = errors.New("features: graph is nil")

	// ErrOptionViolation is returned when an invalid option was supplied.
	ErrOptionViolation = errors.New("features: invalid option supplied")

	// ErrLengthMismatch is returned when a policy yields vectors whose
	// lengths differ from the node counts.
	ErrLengthMismatch = errors.New("features: feature vector length mismatch")

	// ErrUnknownPolicy is returned by ByName for an unrecognised name.
	ErrUnknownPolicy = errors.New("features: unknown policy")
)

// Policy produces one scalar feature per node of each graph and decides
// when two features are equal. Compute is called only for equal-size graphs.
// Returning nil slices disables feature filtering.
type Policy interface {
	Name() string
	Compute(g1, g2 core.ARG) (f1, f2 []float64, err error)
	Equal(a, b float64) bool
}

// Vector is the immutable feature table of one match attempt.
type Vector struct {
	F1, F2 []float64
	policy Policy
}

// Compatible reports whether node n1 of graph 1 and node n2 of graph 2
// carry equal features under the policy. A nil Vector accepts every pair.
func (v *Vector) Compatible(n1, n2 int) bool {
	if v == nil {
		return true
	}

	return v.policy.Equal(v.F1[n1], v.F2[n2])
}

// Policy returns the policy that produced v.
func (v *Vector) Policy() Policy {
	if v == nil {
		return nil
	}

	return v.policy
}

// DistanceSource selects how Partition obtains the all-pairs distances.
type DistanceSource int

const (
	// SourceBFS runs one bounded BFS per node (default, O(n·(n+m))).
	SourceBFS DistanceSource = iota
	// SourceFloydWarshall closes the unit-weight adjacency table (O(n³)).
	SourceFloydWarshall
)

// DefaultTolerance is the absolute tolerance used by Decay.
const DefaultTolerance = 1e-8
