// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/internal/query"
)

func (a *app) batchCmd() *cobra.Command {
	var parallelism int
	c := &cobra.Command{
		Use:   "batch <edges.csv> <queries.yaml>",
		Short: "Run a YAML file of queries concurrently against one graph",
		Long: `Run every query listed in a YAML file against a single loaded graph.
Queries run concurrently; results are printed in file order.

Example queries.yaml:
  queries:
    - kind: stats
    - kind: path
      from: A
      to: D
      weighted: true
    - kind: components
      threshold: 0.3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open queries: %w", err)
			}
			defer f.Close()

			qs, err := query.DecodeBatch(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			if parallelism < 1 {
				parallelism = a.cfg.Batch.Parallelism
			}

			results, err := query.NewRunner(g, a.log).RunBatch(cmd.Context(), qs, parallelism)
			if err != nil {
				return err
			}

			return query.Render(cmd.OutOrStdout(), a.cfg.Output.Format, results...)
		},
	}
	c.Flags().IntVarP(&parallelism, "parallelism", "p", 0, "queries in flight (default from config)")

	return c
}
