package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// deadlineMask spaces time-limit checks to one per 1024 candidates.
const deadlineMask = 1023

// engine carries the per-search data so the recursion stays allocation-free.
type engine[S State[S]] struct {
	ctx      context.Context
	opts     Options
	deadline time.Time
	stats    Stats
	c1, c2   []int
	size     int
	err      error
}

// Match runs a first-match depth-first search from root.
//
// maxNodes sizes the output buffers (the caller's bound on the mapping
// size, usually the graph-1 node count). A goal larger than maxNodes yields
// ErrBufferTooSmall.
//
// Outcomes:
//   - found:      Result.Found, Size, Core1/Core2 filled; nil error.
//   - not found:  Result.Found == false; nil error.
//   - aborted:    ctx.Err(), ErrTimeLimit or ErrBufferTooSmall; Result
//     still carries the statistics.
func Match[S State[S]](ctx context.Context, root S, maxNodes int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if maxNodes < 0 {
		return nil, fmt.Errorf("%w: maxNodes=%d", ErrOptionViolation, maxNodes)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := &engine[S]{
		ctx:  ctx,
		opts: o,
		c1:   make([]int, maxNodes),
		c2:   make([]int, maxNodes),
	}
	start := time.Now()
	if o.TimeLimit > 0 {
		e.deadline = start.Add(o.TimeLimit)
	}

	found := e.visit(root, 0)
	e.stats.Elapsed = time.Since(start)

	res := &Result{Stats: e.stats}
	if e.err != nil {
		e.log("search aborted", slog.String("reason", e.err.Error()))
		return res, e.err
	}
	if found {
		res.Found = true
		res.Size = e.size
		res.Core1 = e.c1[:e.size]
		res.Core2 = e.c2[:e.size]
	}
	e.log("search finished", slog.Bool("found", found))

	return res, nil
}

// visit explores s; true means "stop": a goal was recorded or the search
// was aborted (e.err set).
func (e *engine[S]) visit(s S, depth int) bool {
	e.stats.States++
	e.opts.OnState(depth)

	if s.IsGoal() {
		if s.CoreLen() > len(e.c1) {
			e.err = fmt.Errorf("%w: %d pairs, buffer %d", ErrBufferTooSmall, s.CoreLen(), len(e.c1))
			return true
		}
		e.size = s.CoreSet(e.c1, e.c2)
		return true
	}
	if s.IsDead() {
		return false
	}

	n1, n2 := NoNode, NoNode
	anchor := NoNode
	for {
		if e.aborted() {
			return true
		}

		var ok bool
		if n1, n2, ok = s.NextPair(n1, n2); !ok {
			return false
		}
		if e.opts.AnchorPruning {
			if anchor == NoNode {
				anchor = n1
			} else if n1 != anchor {
				return false
			}
		}

		e.stats.Nodes++
		if !s.IsFeasiblePair(n1, n2) {
			continue
		}

		child := s.Clone()
		child.AddPair(n1, n2)
		stop := e.visit(child, depth+1)
		child.BackTrack()
		if stop {
			return true
		}
	}
}

// aborted polls ctx every candidate and the deadline sparsely.
func (e *engine[S]) aborted() bool {
	select {
	case <-e.ctx.Done():
		e.err = e.ctx.Err()
		return true
	default:
	}
	if !e.deadline.IsZero() && e.stats.Nodes&deadlineMask == 0 && time.Now().After(e.deadline) {
		e.err = ErrTimeLimit
		return true
	}

	return false
}

func (e *engine[S]) log(msg string, attrs ...slog.Attr) {
	if e.opts.Logger == nil {
		return
	}
	attrs = append(attrs,
		slog.Int64("states", e.stats.States),
		slog.Int64("nodes", e.stats.Nodes),
		slog.Duration("elapsed", e.stats.Elapsed),
	)
	e.opts.Logger.LogAttrs(e.ctx, slog.LevelDebug, msg, attrs...)
}
