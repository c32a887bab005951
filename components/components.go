// SPDX-License-Identifier: MIT
// Package components partitions a core.Graph into connected components of the
// subgraph induced by edges whose weight does not exceed a threshold.
//
// Every vertex lands in exactly one component. Vertices whose incident edges
// all exceed the threshold form singleton components.
//
// Output is deterministic: members of a component are sorted ascending and
// components are ordered by their smallest member.
//
// Monotonicity: for τ1 <= τ2 the partition at τ1 refines the partition at τ2.
package components

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors for component discovery.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrVertexNotFound is returned by ComponentOf for an unknown label.
	ErrVertexNotFound = errors.New("components: vertex not found")
)

// Component is the sorted set of labels of one connected component.
type Component []string

// ConnectedComponents returns the connected components of g restricted to
// edges with weight <= threshold.
//
// A NaN threshold admits no edge, so every vertex becomes a singleton.
//
// Time:   O(V + E·log d) traversal, plus O(V log V) for sorting the output.
// Memory: O(V) for visited flags, queue and output.
func ConnectedComponents(g *core.Graph, threshold float64) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	labels := g.NodeLabels()
	seen := make(map[string]bool, len(labels))
	comps := make([]Component, 0)

	for _, root := range labels {
		if seen[root] {
			continue
		}
		comp, err := collect(g, root, threshold, seen)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// ComponentOf returns the component containing label at the given threshold.
//
// Time: O(size of the component + its incident edges).
func ComponentOf(g *core.Graph, label string, threshold float64) (Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(label) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	return collect(g, label, threshold, make(map[string]bool))
}

// Index maps every label to the position of its component in comps.
func Index(comps []Component) map[string]int {
	idx := make(map[string]int)
	for i, c := range comps {
		for _, id := range c {
			idx[id] = i
		}
	}

	return idx
}

// collect walks the threshold-restricted subgraph from root with the bfs
// walker, marks every reached label seen and returns them sorted.
func collect(g *core.Graph, root string, threshold float64, seen map[string]bool) (Component, error) {
	res, err := bfs.BFS(g, root, bfs.WithMaxWeight(threshold))
	if err != nil {
		return nil, fmt.Errorf("components: expand %q: %w", root, err)
	}
	for _, id := range res.Order {
		seen[id] = true
	}
	comp := Component(res.Order)
	sort.Strings(comp)

	return comp, nil
}
