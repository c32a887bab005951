// SPDX-License-Identifier: MIT
package kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dsu"
)

// SmallestConnectingThreshold returns the minimum τ such that start and end
// are connected using only edges with weight <= τ.
//
//   - start == end returns 0.
//   - NoThreshold (-1) is returned when start and end lie in different
//     components even using every edge, including when g has no edges.
//
// Steps:
//  1. Validate graph and labels.
//  2. Sort edges by Less.
//  3. Union endpoints edge by edge in a fresh DisjointSet; after each merge
//     check whether start and end share a root. The weight of the edge that
//     first joins them is the answer.
//
// Errors:
//   - ErrGraphNil, ErrVertexNotFound.
//
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func SmallestConnectingThreshold(g *core.Graph, start, end string) (float64, error) {
	if g == nil {
		return NoThreshold, ErrGraphNil
	}
	for _, id := range []string{start, end} {
		if !g.HasNode(id) {
			return NoThreshold, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	if start == end {
		return 0, nil
	}

	forest := dsu.New(g.NodeLabels()...)
	for _, e := range SortedEdges(g) {
		if !forest.Union(e.From, e.To) {
			continue
		}
		if forest.Connected(start, end) {
			return e.Weight, nil
		}
	}

	return NoThreshold, nil
}
