// SPDX-License-Identifier: MIT

package vfmatch

import (
	"context"
	"time"

	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/search"
	"github.com/katalvlaran/vfmatch/vf2"
)

// Option configures Match.
type Option func(*Options)

// Options collects the settings forwarded to vf2.New and search.Match.
type Options struct {
	State  []vf2.Option
	Search []search.Option
}

// WithStateOptions forwards options to vf2.New.
func WithStateOptions(opts ...vf2.Option) Option {
	return func(o *Options) { o.State = append(o.State, opts...) }
}

// WithSearchOptions forwards options to search.Match.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// Run is the outcome of one match attempt.
type Run struct {
	// Mode is the resolved matching problem.
	Mode vf2.Mode
	// InitTime is the time spent building the initial state (features included).
	InitTime time.Duration
	// Result holds the mapping and the search statistics; it is non-nil
	// whenever the search started, even if it was aborted.
	Result *search.Result
}

// Match builds the initial state for g1 against g2 and searches it for the
// first complete mapping. Output buffers are sized to g1.
//
// Errors: those of vf2.New (nil graph, bad option, feature failure) with a
// nil Run, or those of search.Match (cancellation, time limit) alongside a
// Run carrying the partial statistics.
func Match(ctx context.Context, g1, g2 core.ARG, opts ...Option) (*Run, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	root, err := vf2.New(g1, g2, o.State...)
	if err != nil {
		return nil, err
	}
	run := &Run{Mode: root.Mode(), InitTime: time.Since(start)}

	n1, _ := root.NodeCounts()
	run.Result, err = search.Match(ctx, root, n1, o.Search...)

	return run, err
}
