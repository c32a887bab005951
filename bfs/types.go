// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound reports a start label that is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrEndVertexNotFound reports a ShortestPath target that is not in the graph.
	ErrEndVertexNotFound = errors.New("bfs: end vertex not found")

	// ErrGraphNil reports a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation reports an Option built from an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts a walk. Invalid values do not panic; they are remembered
// and BFS returns them wrapped in ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one walk.
type BFSOptions struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnVisit sees every vertex in visit order with its hop depth.
	// A non-nil error ends the walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 keeps the walk within that many hops; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor decides per edge curr–neighbor (with its weight)
	// whether the walk may cross it.
	FilterNeighbor func(curr, neighbor string, weight float64) bool

	err error
}

// DefaultOptions is an unbounded, unfiltered walk under context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string, float64) bool { return true },
	}
}

// WithContext cancels the walk when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk to d hops from the start; d == 0 lifts the
// bound and d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter.
func WithFilterNeighbor(fn func(curr, neighbor string, weight float64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxWeight restricts the walk to edges of weight <= limit. A NaN limit
// admits no edge.
func WithMaxWeight(limit float64) Option {
	return WithFilterNeighbor(func(_, _ string, w float64) bool { return w <= limit })
}

// BFSResult is what a walk discovered.
//
// Order lists vertices as visited, Depth maps each reached vertex to its hop
// count and Parent maps each reached vertex except the start to the vertex
// it was discovered from.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo follows Parent links back from dest and returns start..dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
