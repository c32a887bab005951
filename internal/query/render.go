// SPDX-License-Identifier: MIT
package query

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render writes results in the given format ("text" or "json").
// JSON output is a single array when more than one result is given.
func Render(w io.Writer, format string, results ...Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	case "text", "":
		for i, r := range results {
			var header string
			if len(results) > 1 {
				if i > 0 {
					header = "\n"
				}
				header += "# " + string(r.Query.Kind) + "\n"
			}
			if _, err := io.WriteString(w, header+Text(r.Value)); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("query: unknown format %q", format)
}

// Text renders one result payload as newline-terminated plain text.
func Text(v any) string {
	var b strings.Builder
	switch v := v.(type) {
	case Stats:
		fmt.Fprintf(&b, "nodes: %d\nedges: %d\n", v.Nodes, v.Edges)

	case Neighbors:
		if v.Depth > 1 {
			fmt.Fprintf(&b, "%s within %d hops (%d): %s\n", v.Label, v.Depth, v.Count, strings.Join(v.Neighbors, " "))
			break
		}
		fmt.Fprintf(&b, "%s (%d): %s\n", v.Label, v.Count, strings.Join(v.Neighbors, " "))

	case Weight:
		if !v.Adjacent {
			fmt.Fprintf(&b, "%s-%s: no edge\n", v.From, v.To)
			break
		}
		fmt.Fprintf(&b, "%s-%s: %s\n", v.From, v.To, num(v.Weight))

	case Path:
		if !v.Found {
			b.WriteString("no path\n")
			break
		}
		fmt.Fprintf(&b, "%s (%d hops)\n", strings.Join(v.Nodes, " -> "), v.Hops)

	case WeightedPath:
		if !v.Found {
			b.WriteString("no path\n")
			break
		}
		parts := make([]string, len(v.Hops))
		for i, h := range v.Hops {
			parts[i] = h.String()
		}
		fmt.Fprintf(&b, "%s total=%s\n", strings.Join(parts, " "), num(v.Total))

	case Components:
		for _, c := range v.Components {
			fmt.Fprintf(&b, "[%s]\n", strings.Join(c, " "))
		}

	case Threshold:
		if !v.Connected {
			fmt.Fprintf(&b, "%s~%s: not connected\n", v.From, v.To)
			break
		}
		fmt.Fprintf(&b, "%s~%s: %s\n", v.From, v.To, num(v.Value))

	case Forest:
		for _, e := range v.Edges {
			fmt.Fprintf(&b, "%s %s %s\n", e.From, e.To, num(e.Weight))
		}
		fmt.Fprintf(&b, "total: %s\n", num(v.Total))

	default:
		fmt.Fprintf(&b, "%v\n", v)
	}

	return b.String()
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
