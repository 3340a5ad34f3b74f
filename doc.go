// Package steinertree is an in-memory toolkit for approximating minimum
// Steiner trees on weighted undirected graphs — connect a chosen set of
// terminal nodes at low total cost, in polynomial time.
//
// 🚀 What is steinertree?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Heuristic search: A*-style shortest paths with pluggable heuristics
//		• Minimum spanning trees: Prim, Kruskal
//		• Steiner approximation: Kou–Markowsky–Berman with leaf pruning
//		• Grid graphs: 2D lattices with ready-made taxicab heuristics
//
// ✨ Why choose steinertree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, deterministic enumeration, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – heuristics and weight accessors are plain function values
//
// Under the hood, everything is organized into small subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	astar/     — heuristic-guided (best-first) shortest-path search
//	mst/       — minimum spanning trees (Prim, Kruskal)
//	steiner/   — the Kou–Markowsky–Berman Steiner tree approximation
//	gridgraph/ — 2D grids as graphs + taxicab heuristics for astar
//
// Quick ASCII example:
//
//	    A───s───B
//	            │
//	    C───────s
//
//	two "s" nodes are non-terminal Steiner points kept because they lie on
//	the cheapest paths connecting terminals A, B and C.
//
// Typical use: build (or convert) a *core.Graph, pick terminal vertex IDs,
// supply an admissible distance heuristic, and call steiner.Tree. The result
// is a connected, acyclic subgraph spanning every terminal whose total
// weight is within 2·(1−1/k) of the optimum when the heuristic never
// overestimates true shortest-path cost.
//
//	go get github.com/katalvlaran/steinertree
package steinertree
