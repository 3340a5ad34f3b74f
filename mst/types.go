// Package mst: configuration options and sentinel errors for MST
// computation. Supports selecting between Kruskal and Prim via Options.

package mst

import (
	"errors"

	"github.com/katalvlaran/steinertree/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root.
var ErrEmptyRoot = errors.New("mst: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a
// spanning tree covering all vertices cannot be formed. It also applies to
// the empty graph (|V| == 0).
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrNegativeWeight indicates that a negative effective edge weight was
// detected while scanning candidates.
var ErrNegativeWeight = errors.New("mst: negative edge weight encountered")

// ErrUnknownMethod indicates an unrecognized Options.Method value.
var ErrUnknownMethod = errors.New("mst: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// WeightFunc extracts the effective weight of an edge, letting callers
// reinterpret stored weights without mutating the graph.
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

// Options configures which MST algorithm Compute runs, the starting vertex
// for Prim, and the effective weight accessor.
//
// Fields:
//
//	Method string     — MethodKruskal (default) or MethodPrim.
//	Root   string     — start vertex ID for Prim; ignored by Kruskal.
//	                    Empty means "lexicographically first vertex".
//	Weight WeightFunc — effective edge weight; nil means DefaultWeight(g).
type Options struct {
	Method string
	Root   string
	Weight WeightFunc
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; it is ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// WithWeightFunc returns an Option that sets the effective edge-weight
// accessor. Passing nil keeps the graph's default accessor.
func WithWeightFunc(f WeightFunc) Option {
	return func(opts *Options) {
		opts.Weight = f
	}
}

// DefaultOptions returns Options initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal)
//	– Weight = nil (resolved to DefaultWeight(g) at call time)
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   "",
		Weight: nil,
	}
}

// Compute selects and runs the MST algorithm based on the composed Options.
//
//   - Method == MethodKruskal: calls Kruskal(g, ...).
//   - Method == MethodPrim:    calls Prim(g, root, ...), defaulting the root
//     to the lexicographically first vertex when unset.
//   - Otherwise:               returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the MST (empty for a single-vertex graph).
//	int64       — total effective weight of the MST.
//	error       — non-nil if computation cannot proceed.
//
// Note: this is optional scaffolding — Kruskal and Prim can be called directly.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g, WithWeightFunc(cfg.Weight))
	case MethodPrim:
		root := cfg.Root
		if root == "" && g != nil {
			if vs := g.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}

		return Prim(g, root, WithWeightFunc(cfg.Weight))
	default:
		return nil, 0, ErrUnknownMethod
	}
}
