// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query surface over an immutable Graph.
// Policy:
//   - Every label-taking accessor fails with ErrVertexNotFound for unknown labels.
//   - Enumerations are sorted so callers and tests get reproducible output.

package core

import (
	"fmt"
	"sort"
)

// NumNodes returns the number of distinct vertex labels.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) NumNodes() int {
	return len(g.adjacency)
}

// NodeLabels returns all vertex labels in lexicographic ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) NodeLabels() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// HasNode reports whether label is a vertex of g (empty label ⇒ false).
func (g *Graph) HasNode(label string) bool {
	_, ok := g.adjacency[label]
	return ok
}

// NumEdges returns the number of undirected edges.
//
// Each non-loop edge occupies two neighbor-map entries and is halved;
// a self-loop occupies a single entry and counts as exactly one edge.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) NumEdges() int {
	return (g.entries-g.loops)/2 + g.loops
}

// Looped reports whether self-loops were permitted at construction time.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// NumNeighbors returns the size of label's neighbor map.
//
// Errors:
//   - ErrVertexNotFound if label is not a vertex.
func (g *Graph) NumNeighbors(label string) (int, error) {
	nbrs, err := g.neighborMap(label)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

// Neighbors returns the labels adjacent to label, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound if label is not a vertex.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(label string) ([]string, error) {
	nbrs, err := g.neighborMap(label)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(nbrs))
	for id := range nbrs {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

// Adjacent returns label's neighbors with their edge weights, sorted by ID.
//
// Errors:
//   - ErrVertexNotFound if label is not a vertex.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Adjacent(label string) ([]Neighbor, error) {
	nbrs, err := g.neighborMap(label)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, 0, len(nbrs))
	for id, w := range nbrs {
		out = append(out, Neighbor{ID: id, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// EdgeWeight returns the weight of the edge u–v, or NoEdge if u and v are
// not adjacent (including when v is not a vertex).
//
// Errors:
//   - ErrVertexNotFound if u is not a vertex.
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	nbrs, err := g.neighborMap(u)
	if err != nil {
		return NoEdge, err
	}
	w, ok := nbrs[v]
	if !ok {
		return NoEdge, nil
	}

	return w, nil
}

// HasEdge reports whether u and v are adjacent. Unlike EdgeWeight it stays
// exact for a stored weight equal to NoEdge.
//
// Errors:
//   - ErrVertexNotFound if u is not a vertex.
func (g *Graph) HasEdge(u, v string) (bool, error) {
	nbrs, err := g.neighborMap(u)
	if err != nil {
		return false, err
	}
	_, ok := nbrs[v]

	return ok, nil
}

// Edges returns every undirected edge exactly once, with From <= To,
// sorted by (From, To).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.NumEdges())
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u > v {
				continue // the mirror entry is emitted from v's side
			}
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// ForEachNeighbor calls fn for every neighbor of label with the edge weight,
// in unspecified order, without allocating. Iteration stops when fn returns false.
//
// Errors:
//   - ErrVertexNotFound if label is not a vertex.
func (g *Graph) ForEachNeighbor(label string, fn func(nbr string, w float64) bool) error {
	nbrs, err := g.neighborMap(label)
	if err != nil {
		return err
	}
	for nbr, w := range nbrs {
		if !fn(nbr, w) {
			break
		}
	}

	return nil
}

// neighborMap returns the live neighbor map of label. Callers must not mutate it.
func (g *Graph) neighborMap(label string) (map[string]float64, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: %w", ErrVertexNotFound, ErrEmptyVertexID)
	}
	nbrs, ok := g.adjacency[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	return nbrs, nil
}
