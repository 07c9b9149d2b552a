// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/vfmatch/core"
)

// BuilderOption configures constructors.
type BuilderOption func(*builderConfig)

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a seeded RNG for reproducible sampling.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNodeAttrs sets the node attribute generator. Panics on nil.
func WithNodeAttrs(fn func(i int, r *rand.Rand) core.Attr) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeAttrs(nil)")
	}
	return func(c *builderConfig) { c.nodeAttr = fn }
}

// WithEdgeAttrs sets the edge attribute generator. Panics on nil.
func WithEdgeAttrs(fn func(u, v int, r *rand.Rand) core.Attr) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeAttrs(nil)")
	}
	return func(c *builderConfig) { c.edgeAttr = fn }
}

// WithSymmetric makes every constructor emit both u->v and v->u.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// LabelsFrom returns a node attribute generator drawing uniformly from
// labels with the configured RNG, or cycling through them when no RNG is set.
func LabelsFrom(labels ...string) func(int, *rand.Rand) core.Attr {
	return func(i int, r *rand.Rand) core.Attr {
		if len(labels) == 0 {
			return nil
		}
		if r == nil {
			return labels[i%len(labels)]
		}
		return labels[r.Intn(len(labels))]
	}
}
