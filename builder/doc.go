// Package builder provides deterministic constructors for directed ARG
// fixtures: classic topologies, seeded random graphs and isomorphic
// relabelings.
//
// Constructors compose: every Constructor appends its own nodes after the
// ones already present, so BuildGraph(nil, nil, Cycle(3), Path(2)) yields the
// disjoint union of a 3-cycle and a 2-path on nodes 0..4.
//
// Configuration primitives:
//   - BuilderOption mutates builderConfig before use.
//   - WithSeed / WithRand freeze stochastic paths.
//   - WithNodeAttrs / WithEdgeAttrs attach attributes.
//   - WithSymmetric emits every arc in both directions.
//
// Transforms (not constructors):
//   - Relabel(g, perm) builds the isomorphic copy with node i renamed perm[i].
//   - Shuffle(g, rng) picks a random perm and relabels.
//   - Induced(g, nodes) extracts the induced subgraph on nodes.
//
// Determinism: same inputs, options, seed and constructor order yield
// identical graphs.
package builder
