// Package steiner: configuration options and sentinel errors for the
// Kou–Markowsky–Berman approximation.

package steiner

import (
	"errors"

	"github.com/katalvlaran/steinertree/core"
	"github.com/katalvlaran/steinertree/mst"
)

// Sentinel errors returned by Tree and Prune.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("steiner: graph is nil")

	// ErrNoTerminals indicates an empty terminal set. The computation fails
	// fast, before any graph construction.
	ErrNoTerminals = errors.New("steiner: terminal set is empty")

	// ErrTerminalNotFound indicates a terminal vertex absent from the graph.
	ErrTerminalNotFound = errors.New("steiner: terminal not found in graph")

	// ErrUnreachableTerminal indicates that some pair of terminals has no
	// connecting path in the graph. The whole computation aborts; no partial
	// tree is returned.
	ErrUnreachableTerminal = errors.New("steiner: terminal pair is unreachable")
)

// WeightFunc extracts the effective weight of an edge of the original
// graph. It is the per-call analogue of an edge-weight attribute key:
// distances, path expansion, and the final tree all use effective weights,
// while the input graph itself is never mutated.
type WeightFunc func(e *core.Edge) int64

// Options configures the behavior of Tree.
//
// Weight     – effective edge-weight accessor; nil means the edge's
// intrinsic Weight, or 1 per edge on unweighted graphs.
//
// MSTMethod  – algorithm used for both reduction stages:
// mst.MethodKruskal (default) or mst.MethodPrim.
//
// CachePaths – reuse the full path sequences discovered while building the
// distance graph instead of recomputing them during expansion. A pure
// time/memory trade: the cached path comes from the identical search with
// the identical tie-break policy, so the resulting tree is unchanged.
type Options struct {
	Weight     WeightFunc
	MSTMethod  string
	CachePaths bool
}

// Option represents a functional option for configuring Tree.
type Option func(*Options)

// WithWeightFunc sets the effective edge-weight accessor for the original
// graph. Passing nil keeps the default (intrinsic weight, or 1 when
// unweighted).
func WithWeightFunc(f WeightFunc) Option {
	return func(o *Options) {
		o.Weight = f
	}
}

// WithMSTMethod selects the spanning-tree algorithm used by the reduction
// stages: mst.MethodKruskal (default) or mst.MethodPrim. Both produce
// optimal spanning trees; when edge weights tie they may pick different,
// equally-cheap topologies.
func WithMSTMethod(method string) Option {
	return func(o *Options) {
		o.MSTMethod = method
	}
}

// WithPathCaching reuses the shortest paths found while building the
// distance graph during path expansion, trading memory (O(k²) stored
// paths) for k−1 avoided searches. The output tree is identical.
func WithPathCaching() Option {
	return func(o *Options) {
		o.CachePaths = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Weight:     nil (intrinsic weight; 1 per edge on unweighted graphs).
//   - MSTMethod:  mst.MethodKruskal.
//   - CachePaths: false (recompute paths during expansion).
func DefaultOptions() Options {
	return Options{
		Weight:     nil,
		MSTMethod:  mst.MethodKruskal,
		CachePaths: false,
	}
}
