// SPDX-License-Identifier: MIT
package kruskal

import (
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dsu"
)

// SpanningForest computes a minimum spanning forest of g: one minimum spanning
// tree per connected component. Edges are returned in the order they were
// accepted (Less order) together with their total weight.
//
// Unlike a spanning tree, a disconnected graph is not an error; the forest
// then has V - (number of components) edges.
//
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func SpanningForest(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	labels := g.NodeLabels()
	forest := dsu.New(labels...)
	out := make([]core.Edge, 0, len(labels))
	var total float64

	for _, e := range SortedEdges(g) {
		if !forest.Union(e.From, e.To) {
			continue
		}
		out = append(out, e)
		total += e.Weight
		// a single remaining set means every later edge would close a cycle
		if forest.Sets() == 1 {
			break
		}
	}

	return out, total, nil
}
