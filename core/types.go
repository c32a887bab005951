// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types for an undirected,
// weighted, in-memory graph, together with its sentinel errors and options.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, the NoEdge
// sentinel and the internal (construction-only) edge insertion.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex label is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrBadWeight       - weight is not a finite number.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrMalformedLine   - an edge-list record does not have the u,v,w shape.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight that is NaN, infinite or not a number at all.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMalformedLine indicates an edge-list record that is not exactly "u,v,w".
	ErrMalformedLine = errors.New("core: malformed edge line")
)

// NoEdge is returned by EdgeWeight when two vertices are not adjacent.
// It is only meaningful because real weights are assumed non-negative.
const NoEdge float64 = -1

// Edge is an undirected, weighted connection between two vertices.
//
// Edges returned by Graph.Edges are canonical: From <= To lexicographically.
type Edge struct {
	// From is one endpoint.
	From string `json:"from"`

	// To is the other endpoint.
	To string `json:"to"`

	// Weight is the cost of the edge. Algorithms assume Weight >= 0.
	Weight float64 `json:"weight"`
}

// Neighbor is one entry of a vertex's neighbor map.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop is stored once and counts as exactly one edge in NumEdges.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an immutable, undirected, weighted graph.
//
// adjacency[u][v] == adjacency[v][u] == w for every edge (u,v,w).
// A vertex exists iff it is a key of adjacency. There is no mutation API
// once construction finished, so concurrent readers need no locking.
type Graph struct {
	allowLoops bool

	// loops counts self-loops; each sits once in its vertex's neighbor map.
	loops int

	// entries is the total number of neighbor-map entries across all vertices.
	entries int

	adjacency map[string]map[string]float64
}

// newGraph allocates an empty Graph and applies options left-to-right.
func newGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string]map[string]float64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// addEdge inserts or overwrites the undirected edge u–v with weight w.
// Loading the same unordered pair twice keeps the last weight in both directions.
// Only construction code calls it.
func (g *Graph) addEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}

	g.link(u, v, w)
	if u != v {
		g.link(v, u, w)
	}

	return nil
}

// link sets adjacency[from][to] = w, keeping entry and loop counters current.
func (g *Graph) link(from, to string, w float64) {
	nbrs, ok := g.adjacency[from]
	if !ok {
		nbrs = make(map[string]float64)
		g.adjacency[from] = nbrs
	}
	if _, exists := nbrs[to]; !exists {
		g.entries++
		if from == to {
			g.loops++
		}
	}
	nbrs[to] = w
}
