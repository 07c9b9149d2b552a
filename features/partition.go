package features

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/vfmatch/bfs"
	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/matrix"
)

// PartitionOption configures a Partition policy.
type PartitionOption func(*Partition)

// WithDistanceSource selects SourceBFS or SourceFloydWarshall.
func WithDistanceSource(src DistanceSource) PartitionOption {
	return func(p *Partition) {
		switch src {
		case SourceBFS, SourceFloydWarshall:
			p.source = src
		default:
			p.err = fmt.Errorf("%w: unknown distance source %d", ErrOptionViolation, src)
		}
	}
}

// Partition assigns each node a coarse equivalence class derived from its
// distance histograms. Features are integral class ids compared exactly.
type Partition struct {
	source DistanceSource
	err    error
}

// NewPartition returns a Partition policy. Invalid options surface here.
func NewPartition(opts ...PartitionOption) (*Partition, error) {
	p := &Partition{source: SourceBFS}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}

	return p, nil
}

// Name returns "partition".
func (p *Partition) Name() string { return "partition" }

// Equal is exact equality of class ids.
func (p *Partition) Equal(a, b float64) bool { return a == b }

// Compute assigns class ids.
//
// Implementation:
//   - Stage 1: distance tables for both graphs (BFS to radius n, or Floyd–Warshall).
//   - Stage 2: per node, signature = row histogram ++ column histogram.
//   - Stage 3: register graph-1 signatures in node order; the first node k
//     carrying a signature becomes its representative with id k+1.
//   - Stage 4: graph-1 nodes take their representative's id; graph-2 nodes
//     take the id of the matching graph-1 representative, or 0 (a value no
//     graph-1 node carries) when their signature is unknown to graph 1.
//
// Complexity: O(n·(n+m)) with BFS, O(n³) with Floyd–Warshall; plus
// O(n² log n) for the signature registry.
func (p *Partition) Compute(g1, g2 core.ARG) ([]float64, []float64, error) {
	sig1, err := p.signatures(g1)
	if err != nil {
		return nil, nil, err
	}
	sig2, err := p.signatures(g2)
	if err != nil {
		return nil, nil, err
	}

	registry := redblacktree.NewWith(compareSignatures)
	for k, s := range sig1 {
		if _, found := registry.Get(s); !found {
			registry.Put(s, float64(k+1))
		}
	}

	f1 := make([]float64, len(sig1))
	for i, s := range sig1 {
		v, _ := registry.Get(s)
		f1[i] = v.(float64)
	}
	f2 := make([]float64, len(sig2))
	for j, s := range sig2 {
		if v, found := registry.Get(s); found {
			f2[j] = v.(float64)
		}
	}

	return f1, f2, nil
}

// signatures returns one histogram signature per node of g.
func (p *Partition) signatures(g core.ARG) ([][]int, error) {
	d, err := p.distances(g)
	if err != nil {
		return nil, err
	}
	n := g.NodeCount()
	sigs := make([][]int, n)
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		sig := make([]int, 2*n)
		histogram(sig[:n], d.Row(i), i)
		col = d.Col(i, col)
		histogram(sig[n:], col, i)
		sigs[i] = sig
	}

	return sigs, nil
}

func (p *Partition) distances(g core.ARG) (*matrix.Dense, error) {
	if p.source == SourceFloydWarshall {
		return matrix.Distances(g)
	}

	return bfs.DistanceTable(g, bfs.WithMaxDepth(g.NodeCount()))
}

// histogram counts dist[j] for j != self: distance d>0 at index d-1,
// unreachable at index len(h)-1.
func histogram(h []int, dist []float64, self int) {
	last := len(h) - 1
	for j, d := range dist {
		if j == self {
			continue
		}
		if math.IsInf(d, 1) {
			h[last]++
			continue
		}
		if d > 0 {
			h[int(d)-1]++
		}
	}
}

// compareSignatures orders []int signatures lexicographically, shorter first.
func compareSignatures(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return 0
}
