// GridGraph construction and conversion to *core.Graph.

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/steinertree/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.EdgeWeight < 1 {
		opts.EdgeWeight = 1
	}
	// Deep copy to prevent external mutation.
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		EdgeWeight:      opts.EdgeWeight,
		neighborOffsets: offsets,
	}, nil
}

// Square builds an n×n all-land grid with default options: 4-connectivity
// and unit edge weights — the standard lattice for routing experiments.
// Returns ErrBadSide when n < 1.
// Complexity: O(n²).
func Square(n int) (*GridGraph, error) {
	if n < 1 {
		return nil, ErrBadSide
	}
	values := make([][]int, n)
	for y := 0; y < n; y++ {
		values[y] = make([]int, n)
		for x := 0; x < n; x++ {
			values[y][x] = 1
		}
	}

	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether the cell at (x,y) meets the land threshold.
// Out-of-bounds coordinates are water.
// Complexity: O(1).
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// VertexID formats the unique vertex identifier for cell (x,y), as used by
// ToCoreGraph and understood by Coord and Manhattan.
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the GridGraph into a weighted, undirected *core.Graph.
// Each land cell at (x,y) becomes a vertex with ID "x,y" and metadata
// {x, y, value}. Edges of weight EdgeWeight connect neighboring land cells
// according to gg.Conn.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())

	// Add land vertices with coordinate metadata.
	verts := g.VerticesMap()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			id := VertexID(x, y)
			_ = g.AddVertex(id)
			v := verts[id]
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.CellValues[y][x]
		}
	}

	// Add lattice edges between neighboring land cells. AddEdge rejects the
	// mirrored duplicate of an already-linked pair, which keeps the graph simple.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				_, _ = g.AddEdge(VertexID(x, y), VertexID(nx, ny), gg.EdgeWeight)
			}
		}
	}

	return g
}

// Cells returns every land cell in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, 0, gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				out = append(out, Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
			}
		}
	}

	return out
}
