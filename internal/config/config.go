// SPDX-License-Identifier: MIT
// Package config provides YAML configuration for the wgraph CLI.
//
// Lookup order when no explicit path is given:
//  1. $WGRAPH_CONFIG
//  2. ./wgraph.yaml
//
// A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/internal/logging"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "WGRAPH_CONFIG"

// Config is the CLI configuration.
type Config struct {
	Logging logging.Config `yaml:"logging"`
	Graph   GraphConfig    `yaml:"graph"`
	Output  OutputConfig   `yaml:"output"`
	Batch   BatchConfig    `yaml:"batch"`
}

// GraphConfig controls how edge lists are loaded.
type GraphConfig struct {
	// AllowLoops accepts u,u,w records instead of failing the load.
	AllowLoops bool `yaml:"allow_loops"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is text or json.
	Format string `yaml:"format"`
}

// BatchConfig controls concurrent batch execution.
type BatchConfig struct {
	// Parallelism bounds the number of queries in flight.
	Parallelism int `yaml:"parallelism"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Output:  OutputConfig{Format: FormatText},
		Batch:   BatchConfig{Parallelism: 4},
	}
}

// Load resolves the config path and loads it, or returns defaults if none exists.
// It returns the path actually used ("" for defaults).
func Load(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// FindConfigPath returns the first existing candidate path, or "".
func FindConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	if _, err := os.Stat("wgraph.yaml"); err == nil {
		return "wgraph.yaml"
	}

	return ""
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	if c.Batch.Parallelism < 1 {
		return fmt.Errorf("config: batch.parallelism must be >= 1, got %d", c.Batch.Parallelism)
	}

	return nil
}

// applyDefaults fills in values left empty by the file
func (c *Config) applyDefaults() {
	d := Default()
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = d.Logging.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
	if c.Batch.Parallelism == 0 {
		c.Batch.Parallelism = d.Batch.Parallelism
	}
}
