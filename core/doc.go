// Package core provides an immutable, undirected, weighted in-memory Graph
// built once from an edge list.
//
// Storage is a symmetric nested map:
//
//	adjacency[u][v] == adjacency[v][u] == weight
//
// A vertex exists iff it appears as a key; there is no separate vertex object.
//
// Construction:
//
//	Load(r io.Reader, opts...)       // "u,v,w" lines, fail-fast
//	LoadFile(path string, opts...)   // same, from a file
//	FromEdges(edges []Edge, opts...) // in-memory edge list
//
// Loading the same unordered pair twice (in either order) overwrites the weight
// in both directions; the last occurrence wins.
//
// Options:
//
//	– WithLoops()
//	    Permits self-loops (u == v). Otherwise the load fails with ErrLoopNotAllowed.
//	    A self-loop is stored once in u's neighbor map and counts as one edge.
//
// Query methods:
//
//	NumNodes() int                                   // O(1)
//	NodeLabels() []string                            // O(V·log V), sorted
//	HasNode(label string) bool                       // O(1)
//	NumEdges() int                                   // O(1)
//	NumNeighbors(label string) (int, error)          // O(1)
//	Neighbors(label string) ([]string, error)        // O(d·log d), sorted
//	EdgeWeight(u, v string) (float64, error)         // O(1), NoEdge if not adjacent
//	Adjacent(label string) ([]Neighbor, error)       // O(d·log d), sorted by ID
//	Edges() []Edge                                   // O(E·log E), each edge once
//	ForEachNeighbor(label, fn) error                 // O(d), no allocation
//
// Unknown labels:
//
//	Every accessor that takes a label fails with an error wrapping
//	ErrVertexNotFound when the label is absent. EdgeWeight only checks its
//	first argument; an unknown second argument simply means "no edge".
//
// Weights:
//
//	Weights must be finite. Negative weights load fine, but every algorithm
//	in this module assumes weights >= 0; in particular Dijkstra results are
//	undefined on negative weights. This is a precondition, not a checked error.
//
// Concurrency:
//
//	A Graph is never mutated after construction, so any number of goroutines
//	may query it concurrently without locking.
package core
