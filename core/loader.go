// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: Build-once constructors: FromEdges, Load (CSV reader) and LoadFile.
// Policy:
//   - Fail fast: the first bad record aborts construction and no Graph is returned.
//   - Duplicate unordered pairs are not an error; the last occurrence wins.

package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldsPerRecord is the u,v,w shape of one edge-list line.
const fieldsPerRecord = 3

// FromEdges builds a Graph from an in-memory edge list.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight or ErrLoopNotAllowed, wrapped with the
//     zero-based index of the offending edge.
//
// Complexity:
//   - Time O(E), Space O(V + E).
func FromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := newGraph(opts...)
	for i, e := range edges {
		if err := g.addEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Load reads an edge list from r, one "u,v,w" record per line, and builds a Graph.
//
// Framing follows encoding/csv with lazy quoting: a label may be quoted to
// carry a comma, and a bare '"' inside an unquoted label is kept as written.
// Labels are opaque and stored exactly as they appear, surrounding spaces
// included; only the weight field is trimmed before strconv.ParseFloat, so
// scientific notation is accepted. Blank lines before the last record are
// malformed; blank lines after it are ignored.
//
// Errors (wrapped with the 1-based line number):
//   - ErrMalformedLine: wrong field count, an inner blank line or broken quoting.
//   - ErrBadWeight: weight is not numeric or not finite.
//   - ErrEmptyVertexID: an endpoint label is empty.
//   - ErrLoopNotAllowed: u == v without WithLoops().
//   - any read error from r.
func Load(r io.Reader, opts ...GraphOption) (*Graph, error) {
	g := newGraph(opts...)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldsPerRecord
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	// next is the line the following record must start on
	next := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, perr.Line, perr.Err)
			}
			return nil, fmt.Errorf("core: read edge list: %w", err)
		}

		line, _ := cr.FieldPos(0)
		if line != next {
			return nil, fmt.Errorf("%w: line %d: blank line", ErrMalformedLine, next)
		}
		last, _ := cr.FieldPos(fieldsPerRecord - 1)
		next = last + strings.Count(rec[2], "\n") + 1

		raw := strings.TrimSpace(rec[2])
		w, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadWeight, line, raw)
		}
		if err = g.addEdge(rec[0], rec[1], w); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return g, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...GraphOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open edge list: %w", err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
