// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// ExampleLoad builds a graph from a CSV edge list and inspects it.
func ExampleLoad() {
	g, err := core.Load(strings.NewReader("A,B,0.1\nA,C,0.2\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbrs, _ := g.Neighbors("A")
	ab, _ := g.EdgeWeight("A", "B")
	bc, _ := g.EdgeWeight("B", "C")
	fmt.Println(g.NumNodes(), g.NumEdges())
	fmt.Println(nbrs)
	fmt.Println(ab, bc)

	// Output:
	// 3 2
	// [B C]
	// 0.1 -1
}

// ExampleGraph_Edges shows that each undirected edge is listed once.
func ExampleGraph_Edges() {
	g, _ := core.FromEdges([]core.Edge{
		{From: "B", To: "A", Weight: 1},
		{From: "A", To: "B", Weight: 4}, // same pair: last write wins
	})
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// A-B 4
}
