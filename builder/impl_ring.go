// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minCycleNodes = 3
	minPathNodes  = 1
	minStarNodes  = 2
	minWheelNodes = 4
)

// Cycle builds the directed cycle 0 -> 1 -> ... -> n-1 -> 0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := cfg.addNodes(g, n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if err := cfg.addArc(g, u, v); err != nil {
				return wrapCore(methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// Path builds the directed path 0 -> 1 -> ... -> n-1 (n ≥ 1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := cfg.addNodes(g, n)
		for i := 0; i+1 < n; i++ {
			if err := cfg.addArc(g, base+i, base+i+1); err != nil {
				return wrapCore(methodPath, base+i, base+i+1, err)
			}
		}

		return nil
	}
}

// Star builds a hub (the first new node) with arcs hub -> leaf to n-1
// leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.addNodes(g, n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := cfg.addArc(g, hub, leaf); err != nil {
				return wrapCore(methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}

// Wheel builds a directed rim cycle on n-1 nodes plus a hub (the last new
// node) with spokes hub -> rim (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim := n - 1
		base := cfg.addNodes(g, n)
		hub := base + rim
		for i := 0; i < rim; i++ {
			u, v := base+i, base+(i+1)%rim
			if err := cfg.addArc(g, u, v); err != nil {
				return wrapCore(methodWheel, u, v, err)
			}
		}
		for i := 0; i < rim; i++ {
			if err := cfg.addArc(g, hub, base+i); err != nil {
				return wrapCore(methodWheel, hub, base+i, err)
			}
		}

		return nil
	}
}
