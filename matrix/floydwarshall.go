// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vfmatch/core"
)

const (
	opFloydWarshall = "FloydWarshall"
	opDistances     = "Distances"
)

// FloydWarshall closes a distance table in place.
//
// Contract: square; +Inf = no edge; diagonal 0. Loop order is fixed
// (k → i → j) and only strict improvements are written, so the result is
// deterministic.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if d.r != d.c {
		return matrixErrorf(opFloydWarshall, fmt.Errorf("%dx%d: %w", d.r, d.c, ErrNonSquare))
	}

	n := d.r
	data := d.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// Distances returns the unit-weight shortest-path table of g: entry (i, j)
// is the number of edges on a shortest directed path i -> j, +Inf when j is
// unreachable, 0 on the diagonal. Self-loops do not change the diagonal.
func Distances(g core.ARG) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opDistances, ErrGraphNil)
	}
	n := g.NodeCount()
	d, err := NewDistanceTable(n)
	if err != nil {
		return nil, matrixErrorf(opDistances, err)
	}
	var to int
	for from := 0; from < n; from++ {
		for i := 0; i < g.OutEdgeCount(from); i++ {
			to, _ = g.OutEdge(from, i)
			if to != from {
				d.data[from*n+to] = 1
			}
		}
	}
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}
