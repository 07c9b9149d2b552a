// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

// walker encapsulates state during DFS.
type walker struct {
	g    core.ARG
	opts Options
	res  *Result
}

// DFS performs depth-first search on g from start, or over every
// component when WithFullTraversal is set (start is then ignored).
// Neighbours are explored in the graph's edge order: out-edges, then
// in-edges for Both.
//
// On a hook error or cancellation the partial Result is returned with the
// error.
func DFS(g core.ARG, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("DFS(%d) on %d nodes: %w", start, n, ErrStartOutOfRange)
	}

	res := &Result{
		Preorder: make([]int, 0, n),
		Order:    make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = Unvisited
		res.Parent[i] = Unvisited
	}
	w := &walker{g: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start, 0)
	}
	for v := 0; v < n; v++ {
		if res.Depth[v] == Unvisited {
			if err := w.traverse(v, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits n at depth, then recurses into unvisited neighbours.
func (w *walker) traverse(n, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[n] = depth
	w.res.Preorder = append(w.res.Preorder, n)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit(%d): %w", n, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		if w.opts.Direction != In {
			for i := 0; i < w.g.OutEdgeCount(n); i++ {
				to, _ := w.g.OutEdge(n, i)
				if err := w.descend(n, to, depth); err != nil {
					return err
				}
			}
		}
		if w.opts.Direction != Out {
			for i := 0; i < w.g.InEdgeCount(n); i++ {
				from, _ := w.g.InEdge(n, i)
				if err := w.descend(n, from, depth); err != nil {
					return err
				}
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n); err != nil {
			return fmt.Errorf("dfs: OnExit(%d): %w", n, err)
		}
	}
	w.res.Order = append(w.res.Order, n)

	return nil
}

func (w *walker) descend(from, to, depth int) error {
	if w.res.Depth[to] != Unvisited {
		return nil
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(from, to) {
		w.res.SkippedNeighbors++
		return nil
	}
	w.res.Parent[to] = from

	return w.traverse(to, depth+1)
}

// ConnectedOrder returns the forest pre-order of g over the undirected
// view, roots taken in index order. Nil graphs yield nil.
func ConnectedOrder(g core.ARG) []int {
	if g == nil {
		return nil
	}
	res, err := DFS(g, 0, WithDirection(Both), WithFullTraversal())
	if err != nil {
		return nil
	}
	return res.Preorder
}
