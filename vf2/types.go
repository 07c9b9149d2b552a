// SPDX-License-Identifier: MIT

package vf2

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vfmatch/features"
)

// NullNode marks "unmapped" in the core arrays and "none" for NextPair.
const NullNode = -1

// Sentinel errors.
var (
	// ErrGraphNil is returned by New when a graph is nil.
	ErrGraphNil = errors.New("vf2: graph is nil")

	// ErrOptionViolation is returned by New for invalid options.
	ErrOptionViolation = errors.New("vf2: invalid option supplied")

	// ErrPrecondition is the panic payload for violated call contracts.
	ErrPrecondition = errors.New("vf2: precondition violated")

	// ErrStackDiscipline is the panic payload for out-of-order buffer access.
	ErrStackDiscipline = errors.New("vf2: stack discipline violated")
)

// Mode selects the matching problem.
type Mode int

const (
	// ModeAuto picks ModeIsomorphism for equal sizes, ModeSubgraph otherwise.
	ModeAuto Mode = iota
	// ModeIsomorphism requires a bijection between the node sets.
	ModeIsomorphism
	// ModeSubgraph searches graph 1 as an induced subgraph of graph 2.
	ModeSubgraph
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeIsomorphism:
		return "isomorphism"
	case ModeSubgraph:
		return "subgraph"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "auto", "isomorphism"/"iso" and "subgraph"/"sub" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "isomorphism", "iso":
		return ModeIsomorphism, nil
	case "subgraph", "sub":
		return ModeSubgraph, nil
	default:
		return ModeAuto, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Option configures New.
type Option func(*Options)

// Options holds the knobs of a match attempt.
type Options struct {
	// Features is the node feature policy; nil disables features.
	Features features.Policy

	// Mode is the matching problem; ModeAuto by default.
	Mode Mode

	// Order is an explicit static visit order over graph-1 nodes.
	Order []int

	// SortNodes derives Order from SortNodes(g1) when Order is empty.
	SortNodes bool

	// ConnectedOrder derives Order from dfs.ConnectedOrder(g1) when Order
	// is empty and SortNodes is off.
	ConnectedOrder bool

	err error
}

// DefaultOptions returns Partition features, ModeAuto and no static order.
func DefaultOptions() Options {
	p, _ := features.NewPartition()

	return Options{Features: p, Mode: ModeAuto}
}

// WithFeatures selects the feature policy. Nil means features.None.
func WithFeatures(p features.Policy) Option {
	return func(o *Options) {
		if p == nil {
			p = features.None{}
		}
		o.Features = p
	}
}

// WithMode selects the matching problem.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeAuto, ModeIsomorphism, ModeSubgraph:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithNodeOrder sets the static graph-1 visit order used when no terminal
// set constrains the next choice. It must be a permutation of the graph-1
// nodes (checked by New).
func WithNodeOrder(order []int) Option {
	return func(o *Options) {
		o.Order = append([]int(nil), order...)
	}
}

// WithSortedNodes visits graph-1 nodes rarest degree profile first.
func WithSortedNodes() Option {
	return func(o *Options) { o.SortNodes = true }
}

// WithConnectedOrder visits graph-1 nodes in undirected DFS pre-order, so
// that each free-tier choice after the first of a component is adjacent to
// an already visited node.
func WithConnectedOrder() Option {
	return func(o *Options) { o.ConnectedOrder = true }
}
