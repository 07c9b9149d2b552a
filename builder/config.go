// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/vfmatch/core"
)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	rng       *rand.Rand                          // nil means "no randomness"
	nodeAttr  func(i int, r *rand.Rand) core.Attr // i is the global node index
	edgeAttr  func(u, v int, r *rand.Rand) core.Attr
	symmetric bool // emit v->u for every u->v
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeAttr: func(int, *rand.Rand) core.Attr { return nil },
		edgeAttr: func(int, int, *rand.Rand) core.Attr { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNodes appends n nodes with configured attributes and returns the first
// new index.
func (cfg builderConfig) addNodes(g *core.Graph, n int) int {
	base := g.NodeCount()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.nodeAttr(base+i, cfg.rng))
	}

	return base
}

// addArc emits u->v (and v->u when symmetric). Existing arcs are skipped so
// that symmetric emission of an already-symmetric pattern stays simple.
func (cfg builderConfig) addArc(g *core.Graph, u, v int) error {
	if !g.HasEdge(u, v) {
		if err := g.AddEdge(u, v, cfg.edgeAttr(u, v, cfg.rng)); err != nil {
			return err
		}
	}
	if cfg.symmetric && !g.HasEdge(v, u) {
		return g.AddEdge(v, u, cfg.edgeAttr(v, u, cfg.rng))
	}

	return nil
}
