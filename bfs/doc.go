// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its first discoverer in the BFS tree
//   - An OnVisit hook sees each vertex as it is visited and may abort the walk.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor,
//     or by weight ceiling via WithMaxWeight.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - ShortestPath reconstructs the fewest-hop path start→end.
//
// Determinism
//
//	core.Graph.Adjacent returns neighbors sorted by ID and BFS enqueues them
//	in that order, so the visit sequence and the returned path are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (neighbor lists are sorted per expansion)
//   - Memory: O(V)            (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "A", "D")
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound
//	}
//	if len(path) == 0 {
//		// D is not reachable from A
//	}
//
//	res, err := bfs.BFS(
//		g, "start",
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(3),
//		bfs.WithMaxWeight(0.5),
//		bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrEndVertexNotFound    if the ShortestPath target does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
