// Package dfs implements depth-first search over a core.ARG addressed by
// node index, single-source or as a forest over every component.
//
// What:
//
//   - DFS(g, start, opts...): recursive traversal recording pre-order,
//     post-order, discovery depth and parent links.
//   - ConnectedOrder(g): forest pre-order over the undirected view, so
//     that every node after the first of its component is adjacent to an
//     earlier one. vf2.WithConnectedOrder uses it as the static visit order.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked at every frame.
//   - WithDirection(d)          Out (default), In or Both.
//   - WithOnVisit(fn)           pre-order hook; an error aborts traversal.
//   - WithOnExit(fn)            post-order hook; an error aborts traversal.
//   - WithMaxDepth(limit)       stop descending below limit (>= 0).
//   - WithFilterNeighbor(fn)    skip neighbours for which fn returns false.
//   - WithFullTraversal()       restart from every unvisited node in index order.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook and filter costs.
//   - Memory: O(V) for the recursion stack and per-node slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartOutOfRange        if start is not a node (single-source mode).
//   - ErrOptionViolation        for a negative MaxDepth.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs
