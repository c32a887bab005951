// SPDX-License-Identifier: MIT
// Command wgraph loads a weighted edge list and answers graph queries about it.
package main

import (
	"os"

	"github.com/katalvlaran/wgraph/cmd/wgraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
