// Package gridgraph: core types, options, and sentinel errors.

package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadSide indicates a non-positive side for Square.
	ErrBadSide = errors.New("gridgraph: side must be positive")
	// ErrBadVertexID indicates a vertex ID that is not of the "x,y" form.
	ErrBadVertexID = errors.New("gridgraph: vertex ID is not an \"x,y\" coordinate")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // coordinates within the grid
	Value int // original grid value at (X, Y)
}

// GridOptions contains tunable parameters for grid-to-graph conversion.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// EdgeWeight is the weight assigned to every lattice edge (≥ 1).
	EdgeWeight int64
}

// DefaultGridOptions returns GridOptions with default settings:
// LandThreshold=1 (values ≥ 1 are land), Conn=Conn4, EdgeWeight=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		EdgeWeight:    1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original
// input value. Conn, LandThreshold then EdgeWeight are fixed from GridOptions
// during construction. neighborOffsets is precomputed for adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	EdgeWeight      int64
	neighborOffsets [][2]int
}
