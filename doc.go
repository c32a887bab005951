// Package wgraph loads an undirected weighted graph from a CSV edge list and
// answers structural queries about it.
//
// What is inside?
//
//	core/       immutable Graph, CSV loader, counts/neighbors/weights
//	bfs/        breadth-first walker with hooks; fewest-hop paths
//	dijkstra/   minimum-total-weight paths as (from,to,weight) hops
//	components/ connected components restricted to weight <= τ
//	dsu/        disjoint-set union (path compression, union by size)
//	kruskal/    smallest connecting threshold, minimum spanning forest
//	cmd/wgraph  CLI over all of the above, single query or YAML batch
//
// The graph is built once and never mutated, so every read is safe from
// many goroutines without locks.
//
// Quick ASCII example:
//
//	A─0.1─B─0.2─C
//	            │
//	           0.5
//	            │
//	E─0.3─F     D
//
// At τ = 0.3 the components are [A B C] [D] [E F]; A and D first join at
// τ = 0.5; the lightest A→D route is A,B,C,D with total weight 0.8.
//
//	go install github.com/katalvlaran/wgraph/cmd/wgraph@latest
package wgraph
