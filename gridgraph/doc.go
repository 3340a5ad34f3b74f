// Package gridgraph treats a 2D grid of integer cell values as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a weighted *core.Graph with "x,y" vertex IDs
//   - Coordinate round-tripping (Coord) and a ready-made taxicab distance
//     heuristic (Manhattan) for astar searches over grids
//
// Cells with value < LandThreshold are considered "water" and are skipped;
// cells with value ≥ LandThreshold are "land" and become vertices. Square(n)
// builds the common all-land n×n unit lattice used in routing experiments:
// with unit edge weights the Manhattan heuristic is admissible, so
// astar.ShortestPath returns true shortest paths on it.
package gridgraph
