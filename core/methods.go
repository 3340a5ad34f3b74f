// Package core: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. Separate RWMutex locks
// for vertices (muVert) and edges+adjacency (muEdgeAdj) minimize contention.
// Lock order for mixed operations is always muVert → muEdgeAdj.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers
// ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// No-op for an existing vertex.
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	// Insert a new Vertex with a ready-to-use Metadata map.
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Bootstrap the adjacency bucket so edge methods can rely on it.
	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if the vertex
// does not exist.
// Complexity: O(E) — removing a vertex is a topology rewrite.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency for an atomic topology update.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove all edges where id is either endpoint.
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	// Remove the vertex itself and prune empty adjacency buckets.
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// The stable enumeration order keeps higher-level algorithms deterministic.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VerticesMap returns the internal vertex catalog. The returned map and the
// *Vertex values it holds must be treated as read-only except for Metadata,
// which callers may populate after AddVertex.
// Complexity: O(1).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertices
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the undirected degree of the vertex: the number of incident
// edge endpoints (a self-loop contributes 2).
// Returns ErrEmptyVertexID or ErrVertexNotFound on invalid input.
// Complexity: O(deg(v)) over adjacency buckets.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	deg := 0
	var to string
	var bucket map[string]struct{}
	for to, bucket = range g.adjacencyList[id] {
		deg += len(bucket)
		if to == id {
			// Loop endpoints count twice by the standard convention.
			deg += len(bucket)
		}
	}

	return deg, nil
}

// AddEdge creates a new undirected edge between from and to with the given
// weight and returns its unique Edge.ID. Missing endpoints are created
// automatically (AddVertex semantics).
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, or
// ErrMultiEdgeNotAllowed per the graph's configuration.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint: unweighted graphs carry only zero weights.
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint.
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 4) Ensure endpoints exist.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Insert the edge under the edge+adjacency lock.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 6) Generate a unique textual edge ID without fmt allocations.
	eid := g.nextEdgeID()
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}

	// 7) Store the edge and link adjacency in both orientations.
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its adjacency mirror.
// Returns ErrEdgeNotFound if no edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge between from and to exists.
// Works in both orientations since undirected adjacency is mirrored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// EdgeBetween returns the minimum-weight edge connecting from and to
// (ties broken by ascending Edge.ID for determinism). With multi-edges
// disabled there is at most one candidate.
// Returns ErrEdgeNotFound when the endpoints are not adjacent.
// Complexity: O(m) where m is the number of parallel edges between the pair.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best *Edge
	var eid string
	for eid = range g.adjacencyList[from][to] {
		e := g.edges[eid]
		if best == nil || e.Weight < best.Weight || (e.Weight == best.Weight && e.ID < best.ID) {
			best = e
		}
	}
	if best == nil {
		return nil, ErrEdgeNotFound
	}

	return best, nil
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending (stable order:
// edge IDs are monotonic, so this is insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns all edges incident to the given vertex, sorted by
// Edge.ID ascending. The returned *Edge values are read-only; an edge whose
// To equals id is still traversable from id (undirected).
// Returns ErrEmptyVertexID or ErrVertexNotFound on invalid input.
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Acquire locks in mutation order (muVert → muEdgeAdj) so the vertex
	// cannot vanish between validation and the adjacency snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted
// lexicographically ascending. A looped vertex is not its own neighbor.
// Complexity: O(d + k log k) where k is the number of unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var other string
	for _, e := range edges {
		other = e.To
		if other == id {
			other = e.From
		}
		if other == id {
			continue // self-loop
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency creates the nested adjacency buckets for from→to.
// Callers must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from both orientation buckets and prunes the
// buckets that become empty. Callers must hold muEdgeAdj for writing.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after bulk removals.
// Top-level buckets are kept for live vertices (AddVertex bootstraps them).
// Callers must hold muEdgeAdj for writing.
func cleanupAdjacency(g *Graph) {
	for _, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
	}
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// The monotonic counter keeps Edges() in insertion order under edgeIDLess.
func (g *Graph) nextEdgeID() string {
	n := atomic.AddUint64(&g.edgeSeq, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeIDLess orders generated edge IDs numerically ("e2" < "e10"), falling
// back to plain string order for IDs of equal digit length.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
