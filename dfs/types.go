package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates a start index outside [0, NodeCount).
	ErrStartOutOfRange = errors.New("dfs: start node out of range")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dfs: option violation")
)

// Unvisited marks Depth and Parent entries of nodes DFS never reached.
const Unvisited = -1

// Direction selects which edges DFS follows.
type Direction int

const (
	// Out follows edges from -> to.
	Out Direction = iota
	// In follows edges to -> from.
	In
	// Both treats every edge as bidirectional.
	Both
)

// Option configures optional behaviour of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Direction selects the edges to follow.
	Direction Direction

	// OnVisit is invoked on discovery (pre-order).
	OnVisit func(n, depth int) error

	// OnExit is invoked after all descendants are finished (post-order).
	OnExit func(n int) error

	// MaxDepth, if non-negative, stops descending below that depth.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether to descend from -> to.
	FilterNeighbor func(from, to int) bool

	// FullTraversal restarts from every unvisited node in index order.
	FullTraversal bool

	err error
}

// DefaultOptions returns Background context, Out direction, no hooks, no
// depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Direction: Out,
		MaxDepth:  -1,
	}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects Out, In or Both.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		switch d {
		case Out, In, Both:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(n, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(n int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits the traversal depth; 0 visits only the roots.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs an edge filter.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Preorder lists nodes in discovery order.
	Preorder []int
	// Order lists nodes in finish (post-) order.
	Order []int
	// Depth[n] is the tree depth of n, or Unvisited.
	Depth []int
	// Parent[n] is the tree parent of n, or Unvisited for roots and unreached nodes.
	Parent []int
	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether n was reached.
func (r *Result) Visited(n int) bool {
	return n >= 0 && n < len(r.Depth) && r.Depth[n] != Unvisited
}
