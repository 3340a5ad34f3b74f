// Package astar: core types, configuration options, and sentinel errors
// for the heuristic-guided shortest-path search.

package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/steinertree/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrEmptyEndpoint indicates an empty source or target vertex ID.
	ErrEmptyEndpoint = errors.New("astar: source and target IDs must be non-empty")

	// ErrVertexNotFound indicates that source or target does not exist in the graph.
	ErrVertexNotFound = errors.New("astar: endpoint vertex not found in graph")

	// ErrNegativeWeight indicates that a negative effective edge weight was detected.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNoPath indicates that the target is unreachable from the source
	// (possibly only under the configured MaxCost cap).
	ErrNoPath = errors.New("astar: no path between source and target")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Heuristic estimates the remaining cost from vertex u to vertex v.
// It must be side-effect-free; admissibility (never overestimating the
// true shortest-path cost) is required only for shortest-path optimality,
// not for termination.
type Heuristic func(u, v string) int64

// WeightFunc extracts the effective weight of an edge. It lets callers
// reinterpret stored weights without mutating the graph (the analogue of a
// per-call weight attribute key).
type WeightFunc func(e *core.Edge) int64

// DefaultWeight returns the weight accessor used when none is supplied:
// the edge's intrinsic Weight, or constant 1 per edge when the graph is
// unweighted (weights default to 1 when unspecified).
func DefaultWeight(g *core.Graph) WeightFunc {
	if g != nil && !g.Weighted() {
		return func(*core.Edge) int64 { return 1 }
	}

	return func(e *core.Edge) int64 { return e.Weight }
}

// Options configures the behavior of ShortestPath.
//
// Heuristic – remaining-cost estimate (nil means the zero heuristic).
// Weight    – edge-weight accessor (nil means DefaultWeight of the graph).
// MaxCost   – paths whose cost would exceed this cap are abandoned.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Heuristic Heuristic  // estimate of remaining cost to the target
	Weight    WeightFunc // effective edge weight accessor
	MaxCost   int64      // maximum admissible path cost
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithHeuristic sets the remaining-cost estimate used to guide the search.
// Passing nil keeps the zero heuristic (Dijkstra exploration order).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithWeightFunc sets the edge-weight accessor. Passing nil keeps the
// graph's default accessor (intrinsic weight, or 1 when unweighted).
func WithWeightFunc(f WeightFunc) Option {
	return func(o *Options) {
		o.Weight = f
	}
}

// WithMaxCost caps the admissible path cost: candidate paths whose
// accumulated weight would exceed max are abandoned, and the search fails
// with ErrNoPath if the target is only reachable above the cap.
// Negative values panic with ErrBadMaxCost at option construction time.
func WithMaxCost(max int64) Option {
	if max < 0 {
		// Option constructors cannot return errors; fail at construction
		// rather than silently carrying an invalid cap.
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Heuristic: nil (zero heuristic; Dijkstra order).
//   - Weight:    nil (resolved to DefaultWeight(g) at call time).
//   - MaxCost:   math.MaxInt64 (no cap).
func DefaultOptions() Options {
	return Options{
		Heuristic: nil,
		Weight:    nil,
		MaxCost:   math.MaxInt64,
	}
}
