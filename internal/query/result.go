// SPDX-License-Identifier: MIT
package query

import (
	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// Result pairs a query with its kind-specific payload.
type Result struct {
	Query Query `json:"query"`
	Value any   `json:"result"`
}

// Stats answers KindStats.
type Stats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Neighbors answers KindNeighbors. Depth is set when the query looked
// further than direct neighbors.
type Neighbors struct {
	Label     string   `json:"label"`
	Depth     int      `json:"depth,omitempty"`
	Count     int      `json:"count"`
	Neighbors []string `json:"neighbors"`
}

// Weight answers KindWeight. Weight is core.NoEdge when Adjacent is false.
type Weight struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Weight   float64 `json:"weight"`
	Adjacent bool    `json:"adjacent"`
}

// Path answers an unweighted KindPath query.
type Path struct {
	Nodes []string `json:"nodes"`
	Hops  int      `json:"hops"`
	Found bool     `json:"found"`
}

// WeightedPath answers a weighted KindPath query.
type WeightedPath struct {
	Hops  []dijkstra.Hop `json:"hops"`
	Total float64        `json:"total"`
	Found bool           `json:"found"`
}

// Components answers KindComponents.
type Components struct {
	Threshold  float64                `json:"threshold"`
	Components []components.Component `json:"components"`
}

// Threshold answers KindThreshold. Value is -1 when Connected is false.
type Threshold struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Value     float64 `json:"threshold"`
	Connected bool    `json:"connected"`
}

// Forest answers KindForest.
type Forest struct {
	Edges []core.Edge `json:"edges"`
	Total float64     `json:"total"`
}
