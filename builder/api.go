// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

// Constructor appends a deterministic topology to g using the resolved
// builderConfig. Constructors validate parameters before adding anything.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures: it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// wrapCore attaches the method tag to a core error.
func wrapCore(method string, u, v int, err error) error {
	return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, u, v, ErrConstructFailed, err)
}
