package features

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vfmatch/bfs"
	"github.com/katalvlaran/vfmatch/core"
)

// DecayOption configures a Decay policy.
type DecayOption func(*Decay)

// WithTolerance overrides the absolute equality tolerance (must be >= 0).
func WithTolerance(eps float64) DecayOption {
	return func(d *Decay) {
		if eps < 0 || math.IsNaN(eps) {
			d.err = fmt.Errorf("%w: tolerance must be >= 0 (%v)", ErrOptionViolation, eps)
			return
		}
		d.tol = eps
	}
}

// Decay scores each node by how quickly the rest of the graph is reached
// along outgoing edges.
type Decay struct {
	tol float64
	err error
}

// NewDecay returns a Decay policy with DefaultTolerance unless overridden.
func NewDecay(opts ...DecayOption) (*Decay, error) {
	d := &Decay{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(d)
	}
	if d.err != nil {
		return nil, d.err
	}

	return d, nil
}

// Name returns "decay".
func (d *Decay) Name() string { return "decay" }

// Equal compares with the absolute tolerance.
func (d *Decay) Equal(a, b float64) bool { return math.Abs(a-b) <= d.tol }

// Compute returns the decay score of every node of both graphs.
func (d *Decay) Compute(g1, g2 core.ARG) ([]float64, []float64, error) {
	f1, err := decayScores(g1)
	if err != nil {
		return nil, nil, err
	}
	f2, err := decayScores(g2)
	if err != nil {
		return nil, nil, err
	}

	return f1, f2, nil
}

// decayScores: #unreachable + Σ_{reachable, d>0} exp(-d/n), BFS radius n.
func decayScores(g core.ARG) ([]float64, error) {
	n := g.NodeCount()
	out := make([]float64, n)
	fn := float64(n)
	for i := 0; i < n; i++ {
		res, err := bfs.BFS(g, i, bfs.WithMaxDepth(n))
		if err != nil {
			return nil, err
		}
		var score float64
		for _, depth := range res.Depth {
			switch {
			case depth == bfs.Unreached:
				score++
			case depth > 0:
				score += math.Exp(-float64(depth) / fn)
			}
		}
		out[i] = score
	}

	return out, nil
}
