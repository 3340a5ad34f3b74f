// Package gridgraph_test verifies grid validation, conversion to core
// graphs, land thresholds, and the taxicab heuristic helpers.
package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinertree/gridgraph"
)

func TestNewGridGraph_Validation(t *testing.T) {
	_, err := gridgraph.NewGridGraph(nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{1, 1}, {1}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.Square(0)
	assert.ErrorIs(t, err, gridgraph.ErrBadSide)
}

func TestSquare_ToCoreGraph(t *testing.T) {
	gg, err := gridgraph.Square(3)
	require.NoError(t, err)

	g := gg.ToCoreGraph()
	// 3×3 lattice: 9 vertices, 12 edges (2·n·(n−1)).
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasEdge("0,0", "1,0"))
	assert.True(t, g.HasEdge("0,0", "0,1"))
	assert.False(t, g.HasEdge("0,0", "1,1")) // no diagonals under Conn4

	// Corner degree 2, edge-cell degree 3, center degree 4.
	deg, err := g.Degree("0,0")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	deg, err = g.Degree("1,0")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
	deg, err = g.Degree("1,1")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
}

func TestConn8_AddsDiagonals(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, opts)
	require.NoError(t, err)

	g := gg.ToCoreGraph()
	assert.True(t, g.HasEdge("0,0", "1,1"))
	assert.Equal(t, 6, g.EdgeCount()) // 4 sides + 2 diagonals
}

func TestLandThreshold_SkipsWater(t *testing.T) {
	// Middle column is water: the two land columns must not be connected.
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 1},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g := gg.ToCoreGraph()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasVertex("1,0"))
	assert.False(t, g.HasEdge("0,0", "2,0"))

	cells := gg.Cells()
	assert.Len(t, cells, 4)
}

func TestCoord_RoundTrip(t *testing.T) {
	id := gridgraph.VertexID(7, 42)
	x, y, err := gridgraph.Coord(id)
	require.NoError(t, err)
	assert.Equal(t, 7, x)
	assert.Equal(t, 42, y)

	for _, bad := range []string{"", "7", ",", "7,", ",42", "a,b", "7;42"} {
		_, _, err = gridgraph.Coord(bad)
		assert.ErrorIs(t, err, gridgraph.ErrBadVertexID, "id=%q", bad)
	}
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, int64(0), gridgraph.Manhattan("3,4", "3,4"))
	assert.Equal(t, int64(7), gridgraph.Manhattan("0,0", "3,4"))
	assert.Equal(t, int64(7), gridgraph.Manhattan("3,4", "0,0"))

	// Non-grid IDs degrade to the zero estimate.
	assert.Equal(t, int64(0), gridgraph.Manhattan("A", "B"))
}
