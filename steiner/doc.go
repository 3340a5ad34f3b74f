// Package steiner approximates the minimum Steiner tree of a weighted
// undirected graph: the cheapest connected subtree containing a given set
// of terminal vertices, possibly routed through extra non-terminal
// ("Steiner point") vertices.
//
// Exact Steiner tree computation is NP-hard; this package implements the
// polynomial-time approximation of Kou, Markowsky, and Berman (1981),
// with heuristic-guided (A*) searches in place of plain shortest paths.
// It is applicable wherever connectivity must be bought at minimum cost:
// multicast/network routing, VLSI wiring, pipeline layout.
//
// Pipeline (Tree):
//
//  1. Distance graph — build the complete graph over the k terminals whose
//     edge weights are heuristic-guided shortest-path distances in G
//     (C(k,2) searches). Any unreachable pair aborts the whole computation.
//  2. Spanning tree reduction — MST of the distance graph selects which
//     terminal pairs to connect directly (k−1 pairs).
//  3. Path expansion — re-derive the full shortest-path vertex sequence for
//     each selected pair and union every traversed edge, with its original
//     weight from G, into an accumulator subgraph (overlaps may form cycles).
//  4. Subgraph reduction — MST of the accumulator removes the cycles and
//     redundant alternate routes.
//  5. Leaf pruning — iteratively strip non-terminal leaves until every leaf
//     is a terminal.
//
// The result is connected, acyclic (|E| = |V|−1), spans every terminal, and
// has no non-terminal leaf. When the heuristic is admissible and consistent,
// the total weight is at most 2·(1−1/k) times the optimal Steiner tree
// weight. An inadmissible heuristic still yields a valid tree, only without
// that guarantee.
//
// Dominant cost: O(k²) heuristic searches plus two MST computations and a
// linear pruning pass. The computation is synchronous and allocation-local:
// every intermediate graph is built fresh and discarded, the input graph
// and heuristic are only ever read, so concurrent invocations over the same
// graph are safe.
//
// Errors (sentinel):
//
//	– ErrNilGraph            if the provided graph pointer is nil.
//	– ErrNoTerminals         if the terminal set is empty (fails fast,
//	                         before any graph construction).
//	– ErrTerminalNotFound    if a terminal is missing from the graph.
//	– ErrUnreachableTerminal if some terminal pair has no connecting path;
//	                         no partial tree is ever returned.
//
// A single terminal is not an error: the result is that vertex alone, with
// no edges.
//
// Example usage:
//
//	tree, err := steiner.Tree(g, []string{"0,0", "4,2", "3,3"}, gridgraph.Manhattan)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("cost:", steiner.Weight(tree))
package steiner
