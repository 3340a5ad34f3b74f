// Clone, CloneEmpty, and Clear: lifecycle helpers for deriving fresh graphs.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same configuration flags but no
// vertices or edges. Useful for building stage-local accumulator graphs that
// must share policy with their source.
// Complexity: O(1).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return &Graph{
		weighted:      g.weighted,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
}

// Clone returns a structural copy of the graph: same configuration, same
// vertex IDs, same edge IDs, endpoints, and weights. Vertex Metadata maps are
// shared (shallow copy), matching the Vertex contract.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		copied := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[eid] = copied
		ensureAdjacency(out, e.From, e.To)
		out.adjacencyList[e.From][e.To][eid] = struct{}{}
		if e.From != e.To {
			ensureAdjacency(out, e.To, e.From)
			out.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}
	// Carry the ID sequence so edges added to the clone stay unique.
	atomic.StoreUint64(&out.edgeSeq, atomic.LoadUint64(&g.edgeSeq))

	return out
}

// Clear removes every vertex and edge while keeping configuration flags.
// Complexity: O(1) (old maps are released to the garbage collector).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.edgeSeq, 0)
}
