// Package config loads the vfmatch CLI configuration from YAML with
// environment overrides, and translates it into library options.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vfmatch/argio"
	"github.com/katalvlaran/vfmatch/features"
	"github.com/katalvlaran/vfmatch/internal/logging"
	"github.com/katalvlaran/vfmatch/search"
	"github.com/katalvlaran/vfmatch/vf2"
)

// Config is the full CLI configuration.
type Config struct {
	Match   MatchConfig    `yaml:"match"`
	Input   InputConfig    `yaml:"input"`
	Log     logging.Config `yaml:"log"`
	Metrics MetricsConfig  `yaml:"metrics"`
}

// MatchConfig holds the matcher knobs.
type MatchConfig struct {
	// Features is partition, decay or none.
	Features string `yaml:"features"`
	// DistanceSource is bfs or floyd (partition only).
	DistanceSource string `yaml:"distance_source"`
	// Tolerance is the decay comparison tolerance.
	Tolerance float64 `yaml:"tolerance"`
	// Mode is auto, isomorphism or subgraph.
	Mode           string        `yaml:"mode"`
	SortNodes      bool          `yaml:"sort_nodes"`
	ConnectedOrder bool          `yaml:"connected_order"`
	AnchorPruning  bool          `yaml:"anchor_pruning"`
	TimeLimit      time.Duration `yaml:"time_limit"`
}

// InputConfig controls graph loading.
type InputConfig struct {
	// Format is auto, binary or text.
	Format string `yaml:"format"`
	Labels bool   `yaml:"labels"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// File is written after each command when non-empty.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Match: MatchConfig{
			Features:       "partition",
			DistanceSource: "bfs",
			Tolerance:      features.DefaultTolerance,
			Mode:           "auto",
			AnchorPruning:  true,
		},
		Input: InputConfig{Format: "auto"},
		Log:   logging.DefaultConfig(),
	}
}

// Load starts from Default, overlays the YAML file at path (if path is
// non-empty and exists), applies VFMATCH_* environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("load config file: %w", err)
		default:
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("VFMATCH_FEATURES"); v != "" {
		c.Match.Features = v
	}
	if v := os.Getenv("VFMATCH_MODE"); v != "" {
		c.Match.Mode = v
	}
	if v := os.Getenv("VFMATCH_TIME_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Match.TimeLimit = d
		}
	}
	if v := os.Getenv("VFMATCH_ANCHOR_PRUNING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Match.AnchorPruning = b
		}
	}
	if v := os.Getenv("VFMATCH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("VFMATCH_METRICS_FILE"); v != "" {
		c.Metrics.File = v
	}
}

// Validate checks every enumerated field and numeric range.
func (c Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := vf2.ParseMode(c.Match.Mode); err != nil {
		return err
	}
	if c.Match.TimeLimit < 0 {
		return fmt.Errorf("time_limit must be >= 0")
	}
	if _, err := c.format(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Policy builds the configured feature policy.
func (c Config) Policy() (features.Policy, error) {
	switch c.Match.Features {
	case "partition", "":
		src := features.SourceBFS
		switch c.Match.DistanceSource {
		case "bfs", "":
		case "floyd", "floyd-warshall":
			src = features.SourceFloydWarshall
		default:
			return nil, fmt.Errorf("distance_source must be bfs or floyd, got %q", c.Match.DistanceSource)
		}
		p, err := features.NewPartition(features.WithDistanceSource(src))
		if err != nil {
			return nil, err
		}
		return p, nil
	case "decay":
		d, err := features.NewDecay(features.WithTolerance(c.Match.Tolerance))
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return features.ByName(c.Match.Features)
	}
}

// StateOptions translates the match section into vf2 options.
func (c Config) StateOptions() ([]vf2.Option, error) {
	p, err := c.Policy()
	if err != nil {
		return nil, err
	}
	mode, err := vf2.ParseMode(c.Match.Mode)
	if err != nil {
		return nil, err
	}
	opts := []vf2.Option{vf2.WithFeatures(p), vf2.WithMode(mode)}
	if c.Match.SortNodes {
		opts = append(opts, vf2.WithSortedNodes())
	}
	if c.Match.ConnectedOrder {
		opts = append(opts, vf2.WithConnectedOrder())
	}
	return opts, nil
}

// SearchOptions translates the match section into search options.
func (c Config) SearchOptions(logger *slog.Logger) []search.Option {
	opts := []search.Option{
		search.WithAnchorPruning(c.Match.AnchorPruning),
		search.WithTimeLimit(c.Match.TimeLimit),
	}
	if logger != nil {
		opts = append(opts, search.WithLogger(logger))
	}
	return opts
}

// LoadOptions translates the input section into argio options.
func (c Config) LoadOptions() []argio.Option {
	f, _ := c.format()
	opts := []argio.Option{argio.WithFormat(f)}
	if c.Input.Labels {
		opts = append(opts, argio.WithLabels())
	}
	return opts
}

func (c Config) format() (argio.Format, error) {
	switch c.Input.Format {
	case "auto", "":
		return argio.FormatAuto, nil
	case "binary":
		return argio.FormatBinary, nil
	case "text":
		return argio.FormatText, nil
	default:
		return argio.FormatAuto, fmt.Errorf("input format must be auto, binary or text, got %q", c.Input.Format)
	}
}
