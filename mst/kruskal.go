// Kruskal's Minimum Spanning Tree algorithm over an undirected *core.Graph,
// using a disjoint-set (union-find) structure with path compression and
// union by rank.

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/steinertree/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected graph.
//
// Steps:
//  1. Validate: g != nil (ErrNilGraph); resolve the weight accessor.
//  2. Retrieve sorted vertex IDs; 0 vertices → ErrDisconnected;
//     1 vertex → trivial MST (no edges, weight 0).
//  3. Collect edges via g.Edges(), skipping self-loops and rejecting
//     negative effective weights (ErrNegativeWeight).
//  4. Stable-sort edges by ascending effective weight; ties keep insertion
//     order, making the result deterministic.
//  5. Union-find over sorted edges: include an edge iff its endpoints are
//     in different components; stop at |V|−1 edges.
//  6. Fewer than |V|−1 edges after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	// 1) Validate inputs and resolve configuration.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Weight == nil {
		cfg.Weight = DefaultWeight(g)
	}

	// 2) Retrieve all vertex IDs in sorted order for determinism.
	vertices := g.Vertices()
	if len(vertices) == 0 {
		// No vertices: no spanning tree exists by convention.
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		// Single vertex: trivially empty MST.
		return []core.Edge{}, 0, nil
	}

	// 3) Collect candidate edges, skipping self-loops.
	allEdges := g.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	var e *core.Edge
	for _, e = range allEdges {
		if e.From == e.To {
			continue // self-loops cannot appear in a spanning tree
		}
		if cfg.Weight(e) < 0 {
			return nil, 0, fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.From, e.To, cfg.Weight(e))
		}
		edges = append(edges, e)
	}

	// 4) Stable sort by effective weight (ties keep Edge.ID insertion order).
	sort.SliceStable(edges, func(i, j int) bool {
		return cfg.Weight(edges[i]) < cfg.Weight(edges[j])
	})

	// 5) Disjoint-set union over the sorted edges.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
		rank[vid] = 0
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // point u at its grandparent
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	var (
		tree        []core.Edge
		totalWeight int64
		numVerts    = len(vertices)
	)
	for _, e = range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			tree = append(tree, *e)
			totalWeight += cfg.Weight(e)
			if len(tree) == numVerts-1 {
				break
			}
		}
	}

	// 6) An incomplete tree means the graph was disconnected.
	if len(tree) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}
