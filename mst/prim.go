// Prim's Minimum Spanning Tree algorithm over an undirected *core.Graph:
// grow the tree outwards from a root vertex using a min-heap of candidate
// edges.

package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/steinertree/core"
)

// Prim computes the Minimum Spanning Tree of an undirected graph by growing
// outwards from the specified root vertex.
//
// Steps:
//  1. Validate: g != nil (ErrNilGraph); resolve the weight accessor.
//  2. Validate root: non-empty (ErrEmptyRoot); 0 vertices → ErrDisconnected;
//     root present (core.ErrVertexNotFound).
//  3. A single vertex yields a trivial empty MST.
//  4. Mark root visited; push its incident edges into the heap.
//  5. Pop the cheapest candidate; skip if its far endpoint was already
//     absorbed (cycle); otherwise include it and push the new frontier.
//  6. Fewer than |V|−1 edges after the loop → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root string, opts ...Option) ([]core.Edge, int64, error) {
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

	// 2) Validate the root before any size shortcuts, so the sentinel for a
	//    bad root does not depend on the graph's vertex count.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 3) Single-vertex MST: no edges, zero weight.
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 4) Initialize the visited set, result container, and candidate heap.
	n := len(vertices)
	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight int64

	pq := &candidatePQ{}
	heap.Init(pq)

	visited[root] = true
	if err := pushFrontier(g, root, visited, pq, cfg.Weight); err != nil {
		return nil, 0, err
	}

	// 5) Main loop: absorb the cheapest frontier edge until spanning.
	for pq.Len() > 0 && len(tree) < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.far] {
			continue // would close a cycle
		}
		visited[c.far] = true
		tree = append(tree, *c.edge)
		totalWeight += c.weight

		if err := pushFrontier(g, c.far, visited, pq, cfg.Weight); err != nil {
			return nil, 0, err
		}
	}

	// 6) An incomplete tree means the graph was disconnected.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}

// pushFrontier pushes every edge from u to a not-yet-visited vertex onto the
// candidate heap, rejecting negative effective weights.
func pushFrontier(g *core.Graph, u string, visited map[string]bool, pq *candidatePQ, wf WeightFunc) error {
	neighbors, err := g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("mst: failed to get neighbors of %q: %w", u, err)
	}

	var far string
	var w int64
	for _, e := range neighbors {
		// Resolve the endpoint on the far side of u.
		far = e.To
		if far == u {
			far = e.From
		}
		if far == u || visited[far] {
			continue // self-loop or already absorbed
		}
		w = wf(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.From, e.To, w)
		}
		heap.Push(pq, &candidate{edge: e, far: far, weight: w})
	}

	return nil
}

// candidate is a frontier edge: the edge itself, its not-yet-visited
// endpoint, and its effective weight under the configured accessor.
type candidate struct {
	edge   *core.Edge
	far    string
	weight int64
}

// candidatePQ implements heap.Interface for a min-heap of *candidate,
// ordered by effective weight.
type candidatePQ []*candidate

// Len returns the number of candidates in the priority queue.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders candidates by ascending effective weight.
func (pq candidatePQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }

// Swap swaps elements at indices i and j.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *candidate to the heap.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the minimum-weight *candidate from the heap.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
