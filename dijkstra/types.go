// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:             ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:             optional vertex ID; the search stops once it is finalized.
//	– WithReturnPath:     return the predecessor map for path reconstruction.
//	– WithMaxDistance:    optional cap on distances to explore; vertices beyond this are skipped.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if the source or target vertex does not exist in the graph.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// TrivialWeight is the Hop.Weight reported for the single hop of a start == end path.
// It is not an edge weight; it signals "trivial path".
const TrivialWeight = core.NoEdge

// Hop is one step of a weighted path: the edge From–To and its adjacency weight.
type Hop struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// String renders the hop as "(from,to,weight)".
func (h Hop) String() string {
	return fmt.Sprintf("(%s,%s,%g)", h.From, h.To, h.Weight)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Target           – optional vertex whose finalization ends the search early.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – vertices whose distance would exceed it are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           string
	Target           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target stops the search as soon as id has its final distance.
// Distances of vertices not yet finalized at that point stay provisional.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative or NaN values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped entirely.
// Zero, negative or NaN values are recorded and surface as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - Target:           "" (explore every reachable vertex).
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf.
//   - InfEdgeThreshold: +Inf.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
