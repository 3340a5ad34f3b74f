// A* search: best-first shortest path between two vertices of an undirected
// graph, guided by a caller-supplied heuristic.
//
// Implementation choices, mirroring the rest of the module:
//
//   - Upfront O(E) scan of effective weights to detect negative values and
//     fail fast.
//   - "Lazy" decrease-key: duplicates are pushed into the heap and stale
//     entries (popped g-cost above the current best) are skipped on pop. A
//     vertex whose cost improves after expansion is expanded again, which
//     keeps admissible-but-inconsistent heuristics correct.
//   - Deterministic tie-break: equal f-scores pop in push order (a monotonic
//     sequence number breaks heap ties), so repeated searches over the same
//     graph return identical paths.

package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/steinertree/core"
)

// ShortestPath computes a lowest-cost path from source to target in the
// weighted undirected graph g, exploring vertices in order of
// g-cost + heuristic. It returns the full vertex sequence (source first,
// target last) and the exact accumulated weight of that path.
//
// When the heuristic is admissible the result is a true shortest path;
// otherwise the path is still valid and its returned cost exact, but not
// necessarily minimal. A trivial search (source == target) returns a
// single-vertex path of cost 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be non-empty (ErrEmptyEndpoint).
//  3. Both endpoints must exist in g (ErrVertexNotFound).
//  4. No effective edge weight may be negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if source == "" || target == "" {
		return nil, 0, ErrEmptyEndpoint
	}
	if !g.HasVertex(source) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	// 3) Resolve defaults that depend on the graph.
	if cfg.Weight == nil {
		cfg.Weight = DefaultWeight(g)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = func(string, string) int64 { return 0 }
	}

	// 4) Pre-scan all edges for negative effective weights. Fail fast.
	var e *core.Edge
	for _, e = range g.Edges() {
		if cfg.Weight(e) < 0 {
			return nil, 0, fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.From, e.To, cfg.Weight(e))
		}
	}

	// 5) Run the search.
	r := &runner{
		g:        g,
		options:  cfg,
		target:   target,
		gScore:   make(map[string]int64),
		prev:     make(map[string]string),
		prevEdge: make(map[string]*core.Edge),
	}

	return r.search(source)
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g        *core.Graph           // input graph; read-only during the search
	options  Options               // resolved configuration
	target   string                // search destination
	gScore   map[string]int64      // vertex ID → best known path cost from source
	prev     map[string]string     // vertex ID → predecessor on that best path
	prevEdge map[string]*core.Edge // vertex ID → edge taken from that predecessor
	pq       frontier              // min-heap ordered by f-score, then push order
	pushSeq  uint64                // monotonic sequence for deterministic ties
}

// search runs the best-first loop from source and reconstructs the path
// once the target is popped at its best known cost.
func (r *runner) search(source string) ([]string, int64, error) {
	// Seed the frontier with the source at g-cost 0.
	heap.Init(&r.pq)
	r.gScore[source] = 0
	r.push(source, 0, 0)

	var u string
	for r.pq.Len() > 0 {
		// 1) Pop the most promising candidate.
		item := heap.Pop(&r.pq).(*frontierItem)
		u = item.id

		// 2) Skip stale entries: a cheaper route to u was recorded after
		//    this candidate was pushed (lazy decrease-key leaves duplicates
		//    behind). A vertex whose cost improves after it was expanded is
		//    popped and expanded again.
		if item.g > r.gScore[u] {
			continue
		}

		// 3) Target popped at its best cost: walk the predecessor chain.
		if u == r.target {
			path, cost := r.reconstruct(source)
			return path, cost, nil
		}

		// 4) Relax every edge incident to u.
		if err := r.relax(u); err != nil {
			return nil, 0, err
		}
	}

	// Frontier exhausted without finalizing the target.
	return nil, 0, fmt.Errorf("%w: %q → %q", ErrNoPath, source, r.target)
}

// relax examines each edge incident to u and records strictly better paths
// to the opposite endpoint, pushing updated candidates onto the frontier.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %q: %w", u, err)
	}

	var e *core.Edge
	var v string
	var w, tentative int64
	for _, e = range neighbors {
		// Resolve the opposite endpoint; undirected edges list u on either side.
		v = e.To
		if v == u {
			v = e.From
		}
		if v == u {
			continue // self-loop cannot improve any path
		}

		w = r.options.Weight(e)
		tentative = r.gScore[u] + w

		// Abandon candidates beyond the configured cost cap.
		if tentative > r.options.MaxCost {
			continue
		}
		// Strict improvement only: avoids duplicate pushes on equal cost
		// and keeps the first-discovered (deterministic) predecessor.
		if known, seen := r.gScore[v]; seen && tentative >= known {
			continue
		}

		r.gScore[v] = tentative
		r.prev[v] = u
		r.prevEdge[v] = e
		r.push(v, tentative, tentative+r.options.Heuristic(v, r.target))
	}

	return nil
}

// push enqueues a frontier candidate carrying its g-cost (for staleness
// checks on pop) and the f-score it is ordered by.
func (r *runner) push(id string, g, f int64) {
	r.pushSeq++
	heap.Push(&r.pq, &frontierItem{id: id, g: g, f: f, seq: r.pushSeq})
}

// reconstruct walks the predecessor chain from the target back to source,
// returning the path in forward order together with the exact sum of the
// effective weights of the traversed edges.
func (r *runner) reconstruct(source string) ([]string, int64) {
	// Collect target → source, accumulating edge weights along the chain.
	rev := []string{r.target}
	var cost int64
	for at := r.target; at != source; {
		cost += r.options.Weight(r.prevEdge[at])
		at = r.prev[at]
		rev = append(rev, at)
	}
	// Reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, cost
}

// frontierItem is a search candidate: a vertex with the g-cost it was
// pushed at, its f-score (g plus heuristic estimate), and a push sequence
// number.
type frontierItem struct {
	id  string // vertex ID
	g   int64  // g-cost at push time; above gScore[id] means stale
	f   int64  // g + h priority
	seq uint64 // push order, breaks f ties deterministically
}

// frontier is a min-heap of *frontierItem ordered by f ascending, with
// push order as the tie-break. Stale duplicates are detected on pop by
// comparing the carried g-cost against the runner's current gScore.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f-score, then by push sequence for equal scores.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the minimum element from the heap.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
