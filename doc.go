// Package vfmatch finds exact graph isomorphisms and induced
// graph-subgraph isomorphisms between attributed directed graphs.
//
// The heavy lifting lives in subpackages:
//
//	core/       index-addressed attributed graph (ARG) and the core.ARG contract
//	matrix/     dense distance tables, Floyd–Warshall
//	bfs/        bounded breadth-first distances over core.ARG
//	dfs/        depth-first traversal, connectivity-aware node order
//	features/   structural node features (partition classes, decay scores)
//	vf2/        the partial-mapping state: NextPair, IsFeasiblePair, AddPair, BackTrack
//	search/     generic depth-first driver with statistics and cancellation
//	builder/    deterministic fixtures (cycles, grids, random graphs, permutations)
//	argio/      binary and text graph formats
//
// Match wires vf2 and search together for the common case:
//
//	g1 := builder.MustBuild(nil, builder.Cycle(5))
//	g2, _, _ := builder.Shuffle(g1, rand.New(rand.NewSource(1)))
//	run, err := vfmatch.Match(ctx, g1, g2)
//	// run.Result.Found == true; run.Result.Core1[k] ↦ run.Result.Core2[k]
//
// Equal node counts select isomorphism, a smaller graph 1 selects induced
// subgraph matching; vf2.WithMode overrides the choice. The search stops
// at the first complete mapping.
package vfmatch
