package features

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

// Compute evaluates p on the pair (g1, g2).
//
// Implementation:
//   - Stage 1: reject nil graphs.
//   - Stage 2: return (nil, nil) when node counts differ or p is nil.
//   - Stage 3: run the policy and validate vector lengths.
//
// The returned Vector is shared read-only by every state of the search.
func Compute(g1, g2 core.ARG, p Policy) (*Vector, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	n := g1.NodeCount()
	if p == nil || n != g2.NodeCount() {
		return nil, nil
	}

	f1, f2, err := p.Compute(g1, g2)
	if err != nil {
		return nil, fmt.Errorf("features: %s: %w", p.Name(), err)
	}
	if f1 == nil && f2 == nil {
		return nil, nil
	}
	if len(f1) != n || len(f2) != n {
		return nil, fmt.Errorf("features: %s: got %d/%d for %d nodes: %w",
			p.Name(), len(f1), len(f2), n, ErrLengthMismatch)
	}

	return &Vector{F1: f1, F2: f2, policy: p}, nil
}

// ByName returns the default-configured policy called name:
// "partition", "decay" or "none".
func ByName(name string) (Policy, error) {
	switch name {
	case "partition", "":
		p, err := NewPartition()
		if err != nil {
			return nil, err
		}
		return p, nil
	case "decay":
		d, err := NewDecay()
		if err != nil {
			return nil, err
		}
		return d, nil
	case "none":
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// None disables feature filtering.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// Compute returns nil vectors.
func (None) Compute(_, _ core.ARG) ([]float64, []float64, error) { return nil, nil, nil }

// Equal accepts everything.
func (None) Equal(_, _ float64) bool { return true }
