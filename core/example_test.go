package core_test

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/core"
)

// ExampleGraph builds a labelled triangle and walks its successors.
func ExampleGraph() {
	g := core.NewGraph(core.WithNodeComparator(core.EqualAttrs))
	for _, label := range []string{"C", "N", "O"} {
		g.AddNode(label)
	}
	_ = g.AddEdge(0, 1, nil)
	_ = g.AddEdge(1, 2, nil)
	_ = g.AddEdge(2, 0, nil)

	for n := 0; n < g.NodeCount(); n++ {
		next, _ := g.OutEdge(n, 0)
		fmt.Printf("%v -> %v\n", g.NodeAttr(n), g.NodeAttr(next))
	}

	// Output:
	// C -> N
	// N -> O
	// O -> C
}
