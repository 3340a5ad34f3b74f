// Package astar implements heuristic-guided (best-first) shortest-path
// search on weighted undirected graphs — the A* algorithm.
//
// A* generalizes Dijkstra's algorithm: vertices are explored in order of
// f(v) = g(v) + h(v, target), where g(v) is the best known path cost from
// the source and h is a caller-supplied estimate of the remaining cost to
// the target. With h ≡ 0 the search degenerates to plain Dijkstra order.
//
// Heuristic contract:
//
//   - Admissible (h never overestimates the true remaining cost): the
//     returned path is a shortest path.
//   - Inadmissible: a valid path and its exact weight are still returned,
//     but the path is not guaranteed to be shortest. The search never
//     validates admissibility; that is the caller's bargain.
//
// Complexity:
//
//	– Time:  O((V + E) log V) with a consistent heuristic; an admissible
//	  but inconsistent one may re-expand vertices whose cost improves
//	  after expansion (lazy decrease-key keeps both cases correct).
//	– Space: O(V + E) for score maps, predecessors, and the heap.
//
// Options:
//
//	– WithHeuristic(h):   remaining-cost estimate; nil/omitted means h ≡ 0.
//	– WithWeightFunc(f):  edge-weight accessor; defaults to Edge.Weight, or
//	                      1 per edge on unweighted graphs.
//	– WithMaxCost(c):     abandon paths whose cost would exceed c.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptyEndpoint   if source or target ID is empty.
//	– ErrVertexNotFound  if source or target does not exist in the graph.
//	– ErrNegativeWeight  if a negative effective edge weight is detected.
//	– ErrNoPath          if the target is unreachable from the source.
//
// Example usage:
//
//	path, cost, err := astar.ShortestPath(g, "0,0", "3,4",
//	    astar.WithHeuristic(gridgraph.Manhattan),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("reached in %d steps, cost %d\n", len(path)-1, cost)
package astar
