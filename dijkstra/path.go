// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ShortestPath returns a minimum-total-weight path from start to end as hops.
//
//   - start == end yields the single sentinel hop {start, start, TrivialWeight}.
//   - An unreachable end yields an empty, non-nil slice and a nil error.
//
// Each Hop.Weight is the weight stored in the adjacency relation for that edge,
// not a running distance. Weights must be non-negative (unchecked).
//
// Errors:
//   - ErrNilGraph, ErrEmptySource, ErrVertexNotFound.
func ShortestPath(g *core.Graph, start, end string) ([]Hop, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" {
		return nil, ErrEmptySource
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, end)
	}
	if start == end {
		return []Hop{{From: start, To: end, Weight: TrivialWeight}}, nil
	}

	_, prev, err := Dijkstra(g, Source(start), Target(end), WithReturnPath())
	if err != nil {
		return nil, err
	}
	if _, ok := prev[end]; !ok {
		return []Hop{}, nil
	}

	// walk predecessors end → start, then reverse
	var hops []Hop
	for cur := end; cur != start; {
		p := prev[cur]
		w, err := g.EdgeWeight(p, cur)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: rebuild path at %q: %w", cur, err)
		}
		hops = append(hops, Hop{From: p, To: cur, Weight: w})
		cur = p
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return hops, nil
}

// TotalWeight sums the weights of a path returned by ShortestPath.
// The trivial start == end path has total weight 0.
func TotalWeight(hops []Hop) float64 {
	if len(hops) == 1 && hops[0].From == hops[0].To && hops[0].Weight == TrivialWeight {
		return 0
	}
	var sum float64
	for _, h := range hops {
		sum += h.Weight
	}

	return sum
}
