// SPDX-License-Identifier: MIT
package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/internal/logging"
	"github.com/katalvlaran/wgraph/kruskal"
)

// Runner executes queries against one graph. The graph is immutable, so a
// Runner may serve many goroutines at once.
type Runner struct {
	g   *core.Graph
	log *zap.Logger
}

// NewRunner binds a graph and a logger. A nil logger discards output.
func NewRunner(g *core.Graph, log *zap.Logger) *Runner {
	if log == nil {
		log = logging.Nop()
	}

	return &Runner{g: g, log: log}
}

// Run executes a single query.
func (r *Runner) Run(q Query) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	v, err := r.dispatch(q)
	if err != nil {
		r.log.Debug("query failed", zap.String("kind", string(q.Kind)), zap.Error(err))
		return Result{}, fmt.Errorf("%s: %w", q.Kind, err)
	}
	r.log.Debug("query done",
		zap.String("kind", string(q.Kind)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Result{Query: q, Value: v}, nil
}

// RunBatch executes qs concurrently with at most parallelism queries in
// flight and returns results in input order. The first failure cancels the
// remaining queries and is returned.
func (r *Runner) RunBatch(ctx context.Context, qs []Query, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	results := make([]Result, len(qs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, q := range qs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Run(q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	r.log.Info("batch done", zap.Int("queries", len(qs)), zap.Int("parallelism", parallelism))

	return results, nil
}

func (r *Runner) dispatch(q Query) (any, error) {
	g := r.g
	switch q.Kind {
	case KindStats:
		return Stats{Nodes: g.NumNodes(), Edges: g.NumEdges()}, nil

	case KindNeighbors:
		if q.Depth > 1 {
			return r.within(q.Label, q.Depth)
		}
		nbrs, err := g.Neighbors(q.Label)
		if err != nil {
			return nil, err
		}
		return Neighbors{Label: q.Label, Count: len(nbrs), Neighbors: nbrs}, nil

	case KindWeight:
		adjacent, err := g.HasEdge(q.From, q.To)
		if err != nil {
			return nil, err
		}
		w, err := g.EdgeWeight(q.From, q.To)
		if err != nil {
			return nil, err
		}
		return Weight{From: q.From, To: q.To, Weight: w, Adjacent: adjacent}, nil

	case KindPath:
		if q.Weighted {
			hops, err := dijkstra.ShortestPath(g, q.From, q.To)
			if err != nil {
				return nil, err
			}
			return WeightedPath{Hops: hops, Total: dijkstra.TotalWeight(hops), Found: len(hops) > 0}, nil
		}
		nodes, err := bfs.ShortestPath(g, q.From, q.To)
		if err != nil {
			return nil, err
		}
		return Path{Nodes: nodes, Hops: len(nodes) - 1, Found: len(nodes) > 0}, nil

	case KindComponents:
		comps, err := components.ConnectedComponents(g, q.Threshold)
		if err != nil {
			return nil, err
		}
		return Components{Threshold: q.Threshold, Components: comps}, nil

	case KindThreshold:
		tau, err := kruskal.SmallestConnectingThreshold(g, q.From, q.To)
		if err != nil {
			return nil, err
		}
		return Threshold{From: q.From, To: q.To, Value: tau, Connected: tau != kruskal.NoThreshold}, nil

	case KindForest:
		edges, total, err := kruskal.SpanningForest(g)
		if err != nil {
			return nil, err
		}
		return Forest{Edges: edges, Total: total}, nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidQuery, q.Kind)
}

// within lists every node at most depth hops from label, label excluded.
func (r *Runner) within(label string, depth int) (Neighbors, error) {
	if !r.g.HasNode(label) {
		return Neighbors{}, fmt.Errorf("%w: %q", core.ErrVertexNotFound, label)
	}
	res, err := bfs.BFS(r.g, label, bfs.WithMaxDepth(depth))
	if err != nil {
		return Neighbors{}, err
	}
	ids := res.Order[1:]
	sort.Strings(ids)

	return Neighbors{Label: label, Depth: depth, Count: len(ids), Neighbors: ids}, nil
}
