// Package core_test verifies the Graph container: vertex and edge lifecycle,
// adjacency mirroring, degree accounting, deterministic enumeration, and
// clone independence.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinertree/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	// Empty IDs are rejected.
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	// Adding twice is idempotent.
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	eid, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)

	// Both endpoints exist and see the edge in either orientation.
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Constraints(t *testing.T) {
	// Unweighted graph rejects non-zero weights.
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// Loops are rejected unless enabled.
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	_, err = looped.AddEdge("A", "A", 0)
	assert.NoError(t, err)

	// Parallel edges are rejected unless enabled.
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, multi.EdgeCount())
}

func TestRemoveVertex_CascadesEdges(t *testing.T) {
	// Star around B: removing B must delete every incident edge.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "A", 3)

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "C"))
	assert.True(t, g.HasEdge("C", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	// Removing an absent vertex reports ErrVertexNotFound.
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func TestDegree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "C", 1) // self-loop counts twice

	degA, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, degA)

	degB, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 1, degB)

	degC, err := g.Degree("C")
	require.NoError(t, err)
	assert.Equal(t, 3, degC)

	_, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdgeBetween_PicksMinimumWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "B", 9)

	e, err := g.EdgeBetween("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.Weight)

	// Symmetric lookup.
	e, err = g.EdgeBetween("B", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.Weight)

	_, err = g.EdgeBetween("A", "Z")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestDeterministicEnumeration(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("A", "C", 2)
	_ = g.AddVertex("D")

	// Vertices sort lexicographically.
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	// Edges enumerate in insertion order via monotonic IDs.
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "C", edges[0].From)
	assert.Equal(t, "A", edges[1].From)

	// Neighbor IDs sort lexicographically too.
	ids, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)
}

func TestNeighbors_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)

	c := g.Clone()
	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.Weighted())

	// Mutating the clone leaves the original intact.
	require.NoError(t, c.RemoveVertex("B"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 0, c.EdgeCount())

	// New edges on the clone do not collide with carried-over IDs.
	eid, err := c.AddEdge("A", "C", 4)
	require.NoError(t, err)
	_, err = c.GetEdge(eid)
	assert.NoError(t, err)
}

func TestCloneEmpty_KeepsFlags(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 1)

	e := g.CloneEmpty()
	assert.Zero(t, e.VertexCount())
	assert.Zero(t, e.EdgeCount())
	assert.True(t, e.Weighted())
	assert.True(t, e.Looped())
	assert.True(t, e.Multigraph())
}

func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Weighted())
}
