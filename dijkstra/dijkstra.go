// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Precondition: every edge weight is >= 0. Negative weights are NOT detected;
// results on such graphs are undefined.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under “lazy decrease-key”.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     Unreachable vertices and the source have no entry.
//   - err:  error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source and, if set, Target (ErrVertexNotFound).
//
// Relaxation uses strict less-than: when two paths tie, the first-found
// predecessor is kept.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	n := g.NumNodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64 // vertex ID → best known distance from Source
	prev    map[string]string  // vertex ID → predecessor on the shortest path
	visited map[string]bool    // finalized vertices
	pq      nodePQ
}

// init sets dist[v] = +Inf for all v, dist[Source] = 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.NodeLabels() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Target has been finalized.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge of u and improves neighbor distances where possible.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Adjacent(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nbr := range neighbors {
		v, w := nbr.ID, nbr.Weight
		if r.visited[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// strictly better only; ties keep the first-found predecessor
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
