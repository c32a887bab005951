// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// ExampleShortestPath finds the fewest-hop route regardless of weights.
func ExampleShortestPath() {
	g, _ := core.Load(strings.NewReader("A,B,0.1\nB,C,0.1\nC,D,0.1\nA,D,9\n"))

	path, err := bfs.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)

	path, _ = bfs.ShortestPath(g, "B", "D")
	fmt.Println(path)

	// Output:
	// [A B C]
	// [B A D]
}

// ExampleBFS_layers prints the hop depth of every reachable vertex.
func ExampleBFS_layers() {
	g, _ := core.Load(strings.NewReader("hub,a,1\nhub,b,1\na,c,1\n"))

	res, _ := bfs.BFS(g, "hub")
	for _, id := range res.Order {
		fmt.Printf("%s:%d ", id, res.Depth[id])
	}
	fmt.Println()

	// Output:
	// hub:0 a:1 b:1 c:2
}
