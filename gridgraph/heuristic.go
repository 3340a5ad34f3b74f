// Coordinate parsing and the taxicab distance heuristic for astar searches
// over grid graphs.

package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord parses an "x,y" vertex ID (as produced by VertexID) back into grid
// coordinates. Returns ErrBadVertexID for anything else.
// Complexity: O(len(id)).
func Coord(id string) (x, y int, err error) {
	comma := strings.IndexByte(id, ',')
	if comma <= 0 || comma == len(id)-1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	x, err = strconv.Atoi(id[:comma])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	y, err = strconv.Atoi(id[comma+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return x, y, nil
}

// Manhattan is an astar.Heuristic computing the taxicab distance
// |x1−x2| + |y1−y2| between two "x,y" vertex IDs. On a 4-connected grid
// with unit edge weights it never overestimates the true shortest-path
// cost, i.e. it is admissible (and consistent).
//
// Non-grid IDs yield estimate 0, which keeps the heuristic harmless
// (admissible) on mixed graphs rather than failing mid-search.
func Manhattan(u, v string) int64 {
	x1, y1, err := Coord(u)
	if err != nil {
		return 0
	}
	x2, y2, err := Coord(v)
	if err != nil {
		return 0
	}

	return abs64(int64(x1)-int64(x2)) + abs64(int64(y1)-int64(y2))
}

// abs64 returns the absolute value of an int64.
func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}
