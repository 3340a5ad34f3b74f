// Package steiner: the Kou–Markowsky–Berman pipeline (Tree), leaf pruning
// (Prune), and the tree-weight helper (Weight).

package steiner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/steinertree/astar"
	"github.com/katalvlaran/steinertree/core"
	"github.com/katalvlaran/steinertree/mst"
)

// pair is an unordered terminal pair, used as the path-cache key.
// Callers normalize so that a < b before constructing one.
type pair struct {
	a, b string
}

// Tree approximates the minimum Steiner tree of g over the given terminals,
// guided by heuristic h (pass nil to degrade every search to Dijkstra).
//
// Steps:
//  1. Validate inputs; deduplicate and sort the terminal set.
//  2. Build the complete distance graph over the terminals, one
//     heuristic-guided shortest-path search per pair.
//  3. Reduce the distance graph to its MST.
//  4. Expand each selected distance edge back into its full path and union
//     the traversed edges, at original weight, into an accumulator subgraph.
//  5. Reduce the accumulator to its MST and prune non-terminal leaves.
//
// The returned graph is always freshly allocated; g is never mutated. A
// single terminal yields a one-vertex, zero-edge tree. Any unreachable
// terminal pair aborts with ErrUnreachableTerminal.
//
// Complexity: O(k²) searches of O((V+E)·log V) each, plus two MST passes
// and a linear pruning sweep, for k terminals.
func Tree(g *core.Graph, terminals []string, h astar.Heuristic, opts ...Option) (*core.Graph, error) {
	// 1) Apply options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and the terminal set.
	if g == nil {
		return nil, ErrNilGraph
	}
	terms, termSet, err := normalizeTerminals(g, terminals)
	if err != nil {
		return nil, err
	}

	// 3) Trivial case: one terminal, zero edges to buy.
	if len(terms) == 1 {
		t := core.NewGraph(core.WithWeighted())
		if err = t.AddVertex(terms[0]); err != nil {
			return nil, err
		}
		return t, nil
	}

	// 4) Resolve the effective weight accessor and the shared search options.
	wf := cfg.Weight
	if wf == nil {
		wf = WeightFunc(astar.DefaultWeight(g))
	}
	searchOpts := []astar.Option{
		astar.WithWeightFunc(astar.WeightFunc(wf)),
	}
	if h != nil {
		searchOpts = append(searchOpts, astar.WithHeuristic(h))
	}

	// 5) Build the complete distance graph D over the terminals: one search
	//    per unordered pair, edge weight = shortest-path distance in g.
	dist := core.NewGraph(core.WithWeighted())
	for _, id := range terms {
		if err = dist.AddVertex(id); err != nil {
			return nil, err
		}
	}
	var paths map[pair][]string
	if cfg.CachePaths {
		paths = make(map[pair][]string, len(terms)*(len(terms)-1)/2)
	}
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			path, cost, perr := astar.ShortestPath(g, terms[i], terms[j], searchOpts...)
			if perr != nil {
				if errors.Is(perr, astar.ErrNoPath) {
					return nil, fmt.Errorf("%w: %q and %q", ErrUnreachableTerminal, terms[i], terms[j])
				}
				return nil, perr
			}
			if _, err = dist.AddEdge(terms[i], terms[j], cost); err != nil {
				return nil, err
			}
			if cfg.CachePaths {
				paths[pair{terms[i], terms[j]}] = path
			}
		}
	}

	// 6) MST of the distance graph selects which k−1 pairs to connect.
	selected, _, err := mst.Compute(dist, mst.WithMethod(cfg.MSTMethod))
	if err != nil {
		return nil, err
	}

	// 7) Expand each selected pair back into its full path and union the
	//    traversed edges, at original effective weight, into the accumulator.
	acc := core.NewGraph(core.WithWeighted())
	for _, de := range selected {
		path, perr := expandPath(g, de.From, de.To, paths, searchOpts)
		if perr != nil {
			return nil, perr
		}
		if err = addPathEdges(acc, g, path, wf); err != nil {
			return nil, err
		}
	}

	// 8) MST of the accumulator removes cycles formed by overlapping paths.
	treeEdges, _, err := mst.Compute(acc, mst.WithMethod(cfg.MSTMethod))
	if err != nil {
		return nil, err
	}
	t := core.NewGraph(core.WithWeighted())
	for _, e := range treeEdges {
		if _, err = t.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	// 9) Strip non-terminal leaves until every leaf is a terminal.
	if err = pruneInPlace(t, termSet); err != nil {
		return nil, err
	}
	return t, nil
}

// Prune returns a copy of t with every non-terminal leaf iteratively
// removed, so that each remaining leaf is a terminal. Interior non-terminal
// vertices (Steiner points) survive. t itself is not modified.
//
// Pruning an already-pruned tree is a no-op, so Prune is idempotent.
func Prune(t *core.Graph, terminals []string) (*core.Graph, error) {
	if t == nil {
		return nil, ErrNilGraph
	}
	_, termSet, err := normalizeTerminals(t, terminals)
	if err != nil {
		return nil, err
	}
	out := t.Clone()
	if err = pruneInPlace(out, termSet); err != nil {
		return nil, err
	}
	return out, nil
}

// Weight sums the intrinsic weights of all edges of t. A nil or empty
// graph weighs 0.
func Weight(t *core.Graph) int64 {
	if t == nil {
		return 0
	}
	var total int64
	for _, e := range t.Edges() {
		total += e.Weight
	}
	return total
}

// normalizeTerminals deduplicates and sorts the terminal IDs, verifies each
// exists in g, and returns both the sorted slice and a membership set.
func normalizeTerminals(g *core.Graph, terminals []string) ([]string, map[string]struct{}, error) {
	set := make(map[string]struct{}, len(terminals))
	for _, id := range terminals {
		set[id] = struct{}{}
	}
	if len(set) == 0 {
		return nil, nil, ErrNoTerminals
	}
	sorted := make([]string, 0, len(set))
	for id := range set {
		if !g.HasVertex(id) {
			return nil, nil, fmt.Errorf("%w: %q", ErrTerminalNotFound, id)
		}
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	return sorted, set, nil
}

// expandPath returns the full vertex sequence connecting a selected
// terminal pair: from the cache when enabled, recomputed otherwise. The
// recomputed search uses the same options (weights, heuristic) as the
// distance-graph stage and therefore the same deterministic tie-breaks, so
// both modes traverse identical edges.
func expandPath(g *core.Graph, from, to string, paths map[pair][]string, searchOpts []astar.Option) ([]string, error) {
	if paths != nil {
		key := pair{from, to}
		if key.a > key.b {
			key.a, key.b = key.b, key.a
		}
		if p, ok := paths[key]; ok {
			return p, nil
		}
	}
	path, _, err := astar.ShortestPath(g, from, to, searchOpts...)
	return path, err
}

// addPathEdges walks consecutive vertices of path and inserts the cheapest
// connecting edge of g, at effective weight, into the accumulator. Edges
// already present (paths overlap freely) are skipped to keep acc simple.
func addPathEdges(acc *core.Graph, g *core.Graph, path []string, wf WeightFunc) error {
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if acc.HasEdge(u, v) {
			continue
		}
		e, err := g.EdgeBetween(u, v)
		if err != nil {
			return err
		}
		if _, err = acc.AddEdge(u, v, wf(e)); err != nil {
			return err
		}
	}
	return nil
}

// pruneInPlace repeatedly removes degree-1 vertices that are not terminals,
// re-examining each removed vertex's neighbor, until every remaining leaf
// is a terminal. Runs in O(V+E) for a tree.
func pruneInPlace(t *core.Graph, termSet map[string]struct{}) error {
	// Seed the worklist with the current non-terminal leaves.
	var queue []string
	queued := make(map[string]struct{})
	for _, id := range t.Vertices() {
		if _, isTerm := termSet[id]; isTerm {
			continue
		}
		deg, err := t.Degree(id)
		if err != nil {
			return err
		}
		if deg <= 1 {
			queue = append(queue, id)
			queued[id] = struct{}{}
		}
	}

	// Drain: removing a leaf may expose its neighbor as the next leaf.
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		neighbors, err := t.NeighborIDs(id)
		if err != nil {
			return err
		}
		if err = t.RemoveVertex(id); err != nil {
			return err
		}
		for _, nb := range neighbors {
			if _, isTerm := termSet[nb]; isTerm {
				continue
			}
			if _, done := queued[nb]; done {
				continue
			}
			deg, derr := t.Degree(nb)
			if derr != nil {
				return derr
			}
			if deg <= 1 {
				queue = append(queue, nb)
				queued[nb] = struct{}{}
			}
		}
	}
	return nil
}
