// SPDX-License-Identifier: MIT
// Package dsu implements a disjoint-set forest (union-find) over string labels
// with path compression and union by size.
//
// A DisjointSet is a plain value with no shared state: create one per
// computation and drop it afterwards. It is not safe for concurrent use.
//
// Complexity: any sequence of m Find/Union calls on n elements costs
// O(m·α(n)), where α is the inverse Ackermann function.
package dsu

// DisjointSet partitions labels into disjoint sets.
//
// parent[x] == x marks a root; size is maintained for roots only.
type DisjointSet struct {
	parent map[string]string
	size   map[string]int
	sets   int
}

// New creates a DisjointSet with every label in its own singleton set.
// Duplicate labels are ignored.
func New(labels ...string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(labels)),
		size:   make(map[string]int, len(labels)),
	}
	for _, x := range labels {
		d.Add(x)
	}

	return d
}

// Add inserts x as a singleton set. Adding an existing element is a no-op.
func (d *DisjointSet) Add(x string) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.size[x] = 1
	d.sets++
}

// Has reports whether x has been added.
func (d *DisjointSet) Has(x string) bool {
	_, ok := d.parent[x]
	return ok
}

// Find returns the representative of x's set, auto-adding x as a singleton
// if it is unknown. Every node on the walked chain is re-pointed directly at
// the root.
func (d *DisjointSet) Find(x string) string {
	if _, ok := d.parent[x]; !ok {
		d.Add(x)
		return x
	}

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// second pass: flatten the chain
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b and reports whether they were
// separate. The smaller tree is attached under the larger root; on equal
// sizes b's root goes under a's root.
func (d *DisjointSet) Union(a, b string) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	delete(d.size, rb)
	d.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b string) bool {
	return d.Find(a) == d.Find(b)
}

// SetSize returns the number of elements in x's set.
func (d *DisjointSet) SetSize(x string) int {
	return d.size[d.Find(x)]
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }
