package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/vfmatch/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.ARG
	opts  Options
	ctx   context.Context
	queue *arrayqueue.Queue
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// wrapped OnVisit error.
func BFS(g core.ARG, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: arrayqueue.New(),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks n discovered at depth d and adds it to the queue.
func (w *walker) enqueue(n, d, parent int) {
	w.res.Depth[n] = d
	w.res.Parent[n] = parent
	w.opts.OnEnqueue(n, d)
	w.queue.Enqueue(queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		w.opts.OnDequeue(item.node, item.depth)

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if w.opts.Direction != In {
			w.expand(item.node, next, w.graph.OutEdgeCount(item.node), w.graph.OutEdge)
		}
		if w.opts.Direction != Out {
			w.expand(item.node, next, w.graph.InEdgeCount(item.node), w.graph.InEdge)
		}
	}

	return nil
}

// expand enqueues every unseen neighbour yielded by edge(curr, 0..count-1).
func (w *walker) expand(curr, depth, count int, edge func(n, i int) (int, core.Attr)) {
	var nbr int
	for i := 0; i < count; i++ {
		nbr, _ = edge(curr, i)
		if w.res.Depth[nbr] != Unreached || !w.opts.FilterNeighbor(curr, nbr) {
			continue
		}
		w.enqueue(nbr, depth, curr)
	}
}
