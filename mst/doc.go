// Package mst provides two battle-tested algorithms for computing the
// Minimum Spanning Tree (MST) of an undirected, weighted *core.Graph:
// Kruskal's algorithm and Prim's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E such that T connects all vertices in V and the sum of the
//     weights of edges in T is minimized.
//
//   - Why MST matters here:
//     MST is the reduction step of the Kou–Markowsky–Berman Steiner tree
//     approximation (package steiner): it selects which terminal pairs to
//     connect in the distance graph, and later strips cycles from the
//     expanded path union. It is equally useful standalone for network
//     design and clustering.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) ([]core.Edge, int64, error)
//     Sort all edges by effective weight, then merge components with a
//     disjoint-set (union-find) structure, skipping edges whose endpoints
//     are already connected. Stops after |V|−1 edges.
//     Time O(E log E + α(V)·E) ≈ O(E log V); Space O(V + E).
//
//   - Prim(g, root, opts...) ([]core.Edge, int64, error)
//     Grow a single tree from root, keeping a min-heap of candidate edges
//     that connect the tree to an outside vertex.
//     Time O(E log V); Space O(V + E).
//
// Determinism
//
//	graph.Edges() enumerates edges in insertion order (monotonic IDs) and
//	Kruskal sorts with sort.SliceStable, so equal-weight ties break by
//	insertion order. Multiple optimal spanning trees may exist when weights
//	tie; which one is returned is deterministic for a given graph but is
//	not part of the contract — only the total weight and the tree property
//	are guaranteed.
//
// Weight accessor
//
//	WithWeightFunc supplies an effective edge-weight accessor. The default
//	reads Edge.Weight, or 1 per edge on unweighted graphs (weights default
//	to 1 when unspecified).
//
// Error Conditions
//
//	– ErrNilGraph            : graph is nil.
//	– ErrEmptyRoot (Prim)    : root == "".
//	– core.ErrVertexNotFound : Prim's root does not exist in the graph.
//	– ErrDisconnected        : |V| == 0, or |V| > 1 and no spanning tree
//	                           covers all vertices.
//	– ErrNegativeWeight      : a negative effective edge weight was found.
//
// A single-vertex graph yields a trivial MST: no edges, total weight 0.
package mst
