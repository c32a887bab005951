// SPDX-License-Identifier: MIT
package kruskal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/kruskal"
)

// ExampleSmallestConnectingThreshold shows that the direct A–C edge is not
// needed: A–B–C connects at 0.4.
func ExampleSmallestConnectingThreshold() {
	g, _ := core.Load(strings.NewReader("A,B,0.2\nB,C,0.4\nA,C,0.5\n"))

	tau, err := kruskal.SmallestConnectingThreshold(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tau)

	// Output: 0.4
}
