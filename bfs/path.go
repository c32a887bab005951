// SPDX-License-Identifier: MIT
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// errReached stops the walker once the target has been dequeued.
var errReached = errors.New("bfs: target reached")

// ShortestPath returns the fewest-hop path from start to end, both inclusive.
//
//   - start == end yields []string{start}.
//   - An unreachable end yields an empty, non-nil slice and a nil error.
//
// When several shortest paths exist, the one discovered first (neighbors in
// ascending ID order) is returned; callers should not rely on a particular one.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}
	if start == end {
		return []string{start}, nil
	}

	stop := WithOnVisit(func(id string, _ int) error {
		if id == end {
			return errReached
		}
		return nil
	})
	res, err := BFS(g, start, append(opts[:len(opts):len(opts)], stop)...)
	if err != nil && !errors.Is(err, errReached) {
		return nil, err
	}

	path, err := res.PathTo(end)
	if err != nil {
		return []string{}, nil
	}

	return path, nil
}

// HopDistance returns the number of edges on a shortest path from start to end,
// or -1 when end is unreachable.
func HopDistance(g *core.Graph, start, end string) (int, error) {
	path, err := ShortestPath(g, start, end)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}
