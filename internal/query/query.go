// SPDX-License-Identifier: MIT
// Package query maps typed queries onto the graph algorithms and runs them,
// one at a time or as a concurrent batch over a single immutable graph.
package query

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Kind names a query operation.
type Kind string

// Supported query kinds.
const (
	KindStats      Kind = "stats"
	KindNeighbors  Kind = "neighbors"
	KindWeight     Kind = "weight"
	KindPath       Kind = "path"
	KindComponents Kind = "components"
	KindThreshold  Kind = "threshold"
	KindForest     Kind = "forest"
)

// ErrInvalidQuery is returned for a query missing required fields or with an unknown kind.
var ErrInvalidQuery = errors.New("query: invalid query")

// Query is one request against a graph. Which fields matter depends on Kind:
//
//	stats, forest      – none
//	neighbors          – Label, Depth
//	weight, threshold  – From, To
//	path               – From, To, Weighted
//	components         – Threshold
type Query struct {
	Kind      Kind    `yaml:"kind" json:"kind"`
	Label     string  `yaml:"label,omitempty" json:"label,omitempty"`
	From      string  `yaml:"from,omitempty" json:"from,omitempty"`
	To        string  `yaml:"to,omitempty" json:"to,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Weighted  bool    `yaml:"weighted,omitempty" json:"weighted,omitempty"`

	// Depth > 1 widens neighbors to every node within that many hops.
	Depth int `yaml:"depth,omitempty" json:"depth,omitempty"`
}

// Validate checks that the fields required by Kind are present.
func (q Query) Validate() error {
	switch q.Kind {
	case KindStats, KindForest, KindComponents:
		return nil
	case KindNeighbors:
		if q.Label == "" {
			return fmt.Errorf("%w: %s needs a label", ErrInvalidQuery, q.Kind)
		}
		if q.Depth < 0 {
			return fmt.Errorf("%w: negative depth %d", ErrInvalidQuery, q.Depth)
		}
	case KindWeight, KindPath, KindThreshold:
		if q.From == "" || q.To == "" {
			return fmt.Errorf("%w: %s needs from and to", ErrInvalidQuery, q.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidQuery, q.Kind)
	}

	return nil
}

// batchFile is the YAML shape of a batch: a top-level list under "queries".
type batchFile struct {
	Queries []Query `yaml:"queries"`
}

// DecodeBatch reads and validates a YAML batch file.
//
//	queries:
//	  - kind: path
//	    from: A
//	    to: D
//	    weighted: true
//	  - kind: components
//	    threshold: 0.3
func DecodeBatch(r io.Reader) ([]Query, error) {
	var bf batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("query: decode batch: %w", err)
	}
	for i, q := range bf.Queries {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}

	return bf.Queries, nil
}
