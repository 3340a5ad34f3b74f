// Package core defines the central Graph, Vertex, and Edge types used by
// every algorithm in steinertree, and provides thread-safe primitives for
// building, querying, and cloning undirected graphs.
//
// Design:
//
//   - Vertices are identified by opaque, non-empty string IDs; arbitrary
//     user data (grid coordinates, labels, ...) lives in Vertex.Metadata.
//   - Edges are undirected and carry an int64 Weight. Graphs constructed
//     without WithWeighted() reject non-zero weights; algorithms treat
//     their edges as unit weight (weight defaults to 1 when unspecified).
//   - Adjacency is stored as a nested map
//     adjacencyList[from][to][edgeID] = struct{}{}, giving O(1) existence,
//     insertion, and deletion of edges.
//   - Two sync.RWMutex locks guard state (muVert for the vertex catalog,
//     muEdgeAdj for edges and adjacency), so graphs can be read concurrently
//     with minimal contention. Algorithms in this module never mutate their
//     input graphs.
//   - Enumeration is deterministic: Vertices() sorts IDs lexicographically,
//     Edges() sorts by Edge.ID; edge IDs are monotonic ("e1", "e2", ...).
//
// Errors:
//
//	ErrEmptyVertexID       — vertex ID is the empty string.
//	ErrVertexNotFound      — requested vertex does not exist.
//	ErrEdgeNotFound        — requested edge does not exist.
//	ErrBadWeight           — non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      — self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed — parallel edge when multi-edges are disabled.
package core
