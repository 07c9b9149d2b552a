// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

const (
	methodComplete     = "Complete"
	methodBipartite    = "CompleteBipartite"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minCompleteNodes = 1
	minGridDim       = 1
	probMin          = 0.0
	probMax          = 1.0
)

// Complete builds the complete digraph on n nodes: every ordered pair
// (i, j), i != j, in ascending order (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := cfg.addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := cfg.addArc(g, base+i, base+j); err != nil {
					return wrapCore(methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds arcs left -> right between n1 left nodes and n2
// right nodes (each ≥ 1). Left nodes come first.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d: %w", methodBipartite, n1, n2, ErrTooFewVertices)
		}
		base := cfg.addNodes(g, n1+n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := cfg.addArc(g, base+i, base+n1+j); err != nil {
					return wrapCore(methodBipartite, base+i, base+n1+j, err)
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice in row-major order with arcs pointing
// right and down.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := cfg.addNodes(g, rows*cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.addArc(g, at(r, c), at(r, c+1)); err != nil {
						return wrapCore(methodGrid, at(r, c), at(r, c+1), err)
					}
				}
				if r+1 < rows {
					if err := cfg.addArc(g, at(r, c), at(r+1, c)); err != nil {
						return wrapCore(methodGrid, at(r, c), at(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse samples every ordered pair (i, j), i != j, independently
// with probability p, in (i asc, j asc) order. Requires an RNG unless
// p ∈ {0, 1}.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := cfg.addNodes(g, n)
		var take bool
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := cfg.addArc(g, base+i, base+j); err != nil {
					return wrapCore(methodRandomSparse, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
