// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/internal/query"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <edges.csv>",
		Short: "Print node and edge counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{Kind: query.KindStats})
		},
	}
}

func (a *app) neighborsCmd() *cobra.Command {
	var depth int
	c := &cobra.Command{
		Use:   "neighbors <edges.csv> <label>",
		Short: "List the neighbors of a node, or every node within --depth hops",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{Kind: query.KindNeighbors, Label: args[1], Depth: depth})
		},
	}
	c.Flags().IntVarP(&depth, "depth", "d", 1, "hop radius")

	return c
}

func (a *app) weightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weight <edges.csv> <u> <v>",
		Short: "Print the weight of the edge u-v",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{Kind: query.KindWeight, From: args[1], To: args[2]})
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	var weighted bool
	c := &cobra.Command{
		Use:   "path <edges.csv> <from> <to>",
		Short: "Find a shortest path by hop count, or by total weight with --weighted",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{
				Kind:     query.KindPath,
				From:     args[1],
				To:       args[2],
				Weighted: weighted,
			})
		},
	}
	c.Flags().BoolVarP(&weighted, "weighted", "w", false, "minimize total edge weight instead of hops")

	return c
}

func (a *app) componentsCmd() *cobra.Command {
	var threshold float64
	c := &cobra.Command{
		Use:   "components <edges.csv>",
		Short: "List connected components using only edges with weight <= threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{Kind: query.KindComponents, Threshold: threshold})
		},
	}
	c.Flags().Float64VarP(&threshold, "threshold", "t", 0, "maximum admitted edge weight")
	_ = c.MarkFlagRequired("threshold")

	return c
}

func (a *app) thresholdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "threshold <edges.csv> <from> <to>",
		Short: "Print the smallest threshold at which from and to become connected",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{Kind: query.KindThreshold, From: args[1], To: args[2]})
		},
	}
}

func (a *app) forestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forest <edges.csv>",
		Short: "Print a minimum spanning forest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], query.Query{Kind: query.KindForest})
		},
	}
}
