// SPDX-License-Identifier: MIT
// Package cmd provides the CLI commands for wgraph.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/config"
	"github.com/katalvlaran/wgraph/internal/logging"
	"github.com/katalvlaran/wgraph/internal/query"
)

// app carries flag values and the state built from them in PersistentPreRunE.
type app struct {
	cfgFile    string
	verbose    bool
	format     string
	allowLoops bool

	cfg      *config.Config
	log      *zap.Logger
	closeLog func()
}

// Execute runs the CLI
func Execute() error {
	root, a := newRootCmd()
	err := root.Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	return nil
}

// newRootCmd builds the full command tree. Each call returns independent
// state; the caller runs app.close once the command has finished, whether
// or not it failed.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "wgraph",
		Short: "Query an undirected weighted graph loaded from an edge list",
		Long: `wgraph loads an undirected weighted graph from a CSV edge list
(one "u,v,w" record per line) and answers structural queries about it.

Examples:
  wgraph stats edges.csv
  wgraph path --weighted edges.csv A D
  wgraph components --threshold 0.3 edges.csv
  wgraph batch --format json edges.csv queries.yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $"+config.EnvPath+" or ./wgraph.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.format, "format", "f", "", "output format (text, json)")
	pf.BoolVar(&a.allowLoops, "allow-loops", false, "accept self-loop records")

	root.AddCommand(
		a.statsCmd(),
		a.neighborsCmd(),
		a.weightCmd(),
		a.pathCmd(),
		a.componentsCmd(),
		a.thresholdCmd(),
		a.forestCmd(),
		a.batchCmd(),
	)

	return root, a
}

// close flushes the logger and releases its output file, if setup got that far.
func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.allowLoops {
		cfg.Graph.AllowLoops = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	a.cfg, a.closeLog = cfg, closeLog
	a.log = log.With(zap.String("command", cmd.Name()))
	if path != "" {
		a.log.Debug("config loaded", zap.String("path", path))
	}

	return nil
}

// loadGraph reads the edge list at path using the configured graph options.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	var opts []core.GraphOption
	if a.cfg.Graph.AllowLoops {
		opts = append(opts, core.WithLoops())
	}

	start := time.Now()
	g, err := core.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded",
		zap.String("file", path),
		zap.Int("nodes", g.NumNodes()),
		zap.Int("edges", g.NumEdges()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return g, nil
}

// runOne loads the graph, runs a single query and renders the result.
func (a *app) runOne(cmd *cobra.Command, path string, q query.Query) error {
	g, err := a.loadGraph(path)
	if err != nil {
		return err
	}
	res, err := query.NewRunner(g, a.log).Run(q)
	if err != nil {
		return err
	}

	return query.Render(cmd.OutOrStdout(), a.cfg.Output.Format, res)
}
