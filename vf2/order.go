// SPDX-License-Identifier: MIT

package vf2

import (
	"sort"

	"github.com/katalvlaran/vfmatch/core"
)

// SortNodes returns the nodes of g ordered rarest (in-degree, out-degree)
// profile first; ties go to the larger total degree, then the lower index.
// Visiting rare nodes early narrows the candidate set at shallow depths.
//
// Complexity: O(V log V).
func SortNodes(g core.ARG) []int {
	n := g.NodeCount()
	type profile struct{ in, out int }
	prof := make([]profile, n)
	freq := make(map[profile]int, n)
	for i := 0; i < n; i++ {
		prof[i] = profile{g.InEdgeCount(i), g.OutEdgeCount(i)}
		freq[prof[i]]++
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		px, py := prof[order[x]], prof[order[y]]
		if fx, fy := freq[px], freq[py]; fx != fy {
			return fx < fy
		}
		if dx, dy := px.in+px.out, py.in+py.out; dx != dy {
			return dx > dy
		}

		return order[x] < order[y]
	})

	return order
}
