// SPDX-License-Identifier: MIT
// Package kruskal processes the edges of an undirected core.Graph in ascending
// weight order and merges endpoints in a dsu.DisjointSet.
//
// It answers two questions with that single sweep:
//
//   - SmallestConnectingThreshold: the minimum τ such that two vertices are
//     connected using only edges of weight <= τ (the minimum bottleneck).
//   - SpanningForest: a minimum spanning forest of the whole graph.
//
// Edge order is total and reproducible: weight ascending, then the smaller
// endpoint label, then the larger one.
package kruskal

import (
	"errors"
	"sort"

	"github.com/katalvlaran/wgraph/core"
)

// NoThreshold is returned when no threshold connects the two vertices.
const NoThreshold float64 = -1

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("kruskal: graph is nil")

	// ErrVertexNotFound is returned for an unknown start or end label.
	ErrVertexNotFound = errors.New("kruskal: vertex not found")
)

// Less orders edges by weight, then by the lexicographically smaller endpoint,
// then by the other endpoint.
func Less(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	aLo, aHi := endpoints(a)
	bLo, bHi := endpoints(b)
	if aLo != bLo {
		return aLo < bLo
	}

	return aHi < bHi
}

// SortedEdges returns every edge of g once, self-loops excluded, in Less order.
//
// Complexity: O(E log E).
func SortedEdges(g *core.Graph) []core.Edge {
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue // a self-loop never joins two sets
		}
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return Less(edges[i], edges[j]) })

	return edges
}

func endpoints(e core.Edge) (lo, hi string) {
	if e.From <= e.To {
		return e.From, e.To
	}

	return e.To, e.From
}
