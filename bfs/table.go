package bfs

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/matrix"
)

// DistanceTable runs BFS from every node of g and returns the n×n table of
// shortest directed distances: entry (i, j) is the depth of j in the BFS
// rooted at i, or +Inf if j was not reached. Options apply to every run
// (MaxDepth bounds the radius; Direction(In) yields the transposed table).
//
// Complexity: O(V·(V+E)) time, O(V²) space.
func DistanceTable(g core.ARG, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	d, err := matrix.NewDistanceTable(n)
	if err != nil {
		return nil, fmt.Errorf("bfs: DistanceTable: %w", err)
	}

	var (
		res *Result
		row []float64
	)
	for src := 0; src < n; src++ {
		if res, err = BFS(g, src, opts...); err != nil {
			return nil, err
		}
		row = d.Row(src)
		for dst, depth := range res.Depth {
			if depth != Unreached {
				row[dst] = float64(depth)
			}
		}
	}

	return d, nil
}
