// SPDX-License-Identifier: MIT
package components_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
)

// ExampleConnectedComponents groups vertices linked by edges of weight <= 0.3.
func ExampleConnectedComponents() {
	g, _ := core.Load(strings.NewReader("A,B,0.1\nB,C,0.2\nD,E,0.3\nE,F,0.4\n"))

	comps, err := components.ConnectedComponents(g, 0.3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(comps)

	// Output:
	// [[A B C] [D E] [F]]
}
