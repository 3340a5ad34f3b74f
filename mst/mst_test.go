// Package mst_test verifies Prim and Kruskal: validation, trivial graphs,
// correctness on fixed fixtures, agreement on total weight, weight-accessor
// overrides, and deterministic tie-breaking.
package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinertree/core"
	"github.com/katalvlaran/steinertree/mst"
)

// buildTriangle constructs the undirected, weighted triangle
// A—B(1), B—C(2), A—C(3); its MST is {A—B, B—C} with total weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildMediumGraph creates a connected weighted graph with n vertices and
// edgesCount total edges: a random-weight chain for connectivity plus extra
// random edges, deterministically seeded for reproducibility.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+int64(r.Intn(10)))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+int64(r.Intn(100))); err == nil {
			extra--
		}
	}

	return g
}

func TestValidation_NilAndEmpty(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, _, err = mst.Prim(nil, "A")
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	// Empty graph: no spanning tree by convention.
	g := core.NewGraph(core.WithWeighted())
	_, _, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestValidation_PrimRoot(t *testing.T) {
	g := buildTriangle()

	_, _, err := mst.Prim(g, "")
	assert.ErrorIs(t, err, mst.ErrEmptyRoot)

	_, _, err = mst.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// Root validation must not depend on the vertex count: a single-vertex
	// graph reports the same sentinels as any other.
	single := core.NewGraph(core.WithWeighted())
	require.NoError(t, single.AddVertex("A"))

	_, _, err = mst.Prim(single, "")
	assert.ErrorIs(t, err, mst.ErrEmptyRoot)

	_, _, err = mst.Prim(single, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSingleVertex_TrivialMST(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	edgesK, totalK, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)

	edgesP, totalP, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
}

func TestTriangle_BothAlgorithms(t *testing.T) {
	g := buildTriangle()

	edgesK, totalK, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, edgesK, 2)
	assert.Equal(t, int64(3), totalK)

	edgesP, totalP, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Len(t, edgesP, 2)
	assert.Equal(t, int64(3), totalP)
}

func TestDisconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1) // second island

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	_, _, err = mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestNegativeWeightRejected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", -1)

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrNegativeWeight)
}

func TestAgreementOnMediumGraph(t *testing.T) {
	// Prim and Kruskal may pick different ties, but totals must agree.
	g := buildMediumGraph(60, 200)

	edgesK, totalK, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, edgesK, 59)

	edgesP, totalP, err := mst.Prim(g, "V0")
	require.NoError(t, err)
	assert.Len(t, edgesP, 59)

	assert.Equal(t, totalK, totalP)
}

func TestUnweightedGraph_UnitWeights(t *testing.T) {
	// Unweighted graphs span with every edge counting 1.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("A", "C", 0)

	edges, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, int64(2), total)
}

func TestWeightFuncOverride(t *testing.T) {
	g := buildTriangle()

	// Inverted accessor makes the formerly heaviest edges cheapest.
	inverted := func(e *core.Edge) int64 { return 10 - e.Weight }

	edges, total, err := mst.Kruskal(g, mst.WithWeightFunc(inverted))
	require.NoError(t, err)
	require.Len(t, edges, 2)
	// Picks A—C (eff 7) and B—C (eff 8) over A—B (eff 9).
	assert.Equal(t, int64(15), total)
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle()

	edges, total, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, int64(3), total)

	// Prim via dispatch with a defaulted root.
	edges, total, err = mst.Compute(g, mst.WithMethod(mst.MethodPrim))
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, int64(3), total)

	_, _, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

func TestKruskal_DeterministicTies(t *testing.T) {
	// A 4-cycle of equal weights admits several optimal trees; repeated
	// runs must return the same one (stable sort over insertion order).
	build := func() *core.Graph {
		g := core.NewGraph(core.WithWeighted())
		_, _ = g.AddEdge("A", "B", 1)
		_, _ = g.AddEdge("B", "C", 1)
		_, _ = g.AddEdge("C", "D", 1)
		_, _ = g.AddEdge("D", "A", 1)

		return g
	}

	first, _, err := mst.Kruskal(build())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, errAgain := mst.Kruskal(build())
		require.NoError(t, errAgain)
		assert.Equal(t, first, again)
	}
}
