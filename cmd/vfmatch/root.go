package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vfmatch/internal/config"
	"github.com/katalvlaran/vfmatch/internal/logging"
	"github.com/katalvlaran/vfmatch/internal/metrics"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	flags      flagValues

	cfg      config.Config
	log      *slog.Logger
	runID    string
	recorder *metrics.Recorder
}

type flagValues struct {
	features    string
	source      string
	mode        string
	timeLimit   time.Duration
	noAnchor    bool
	sortNodes   bool
	connected   bool
	labels      bool
	format      string
	logLevel    string
	logFormat   string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "vfmatch",
		Short: "Exact graph and subgraph isomorphism for attributed directed graphs",
		Long: `vfmatch searches for a node mapping between two attributed directed graphs.

Equal node counts select isomorphism; a smaller first graph selects induced
subgraph matching. Graphs are read in the MIVIA binary layout or in the text
language (.txt, .arg, .vfg).

Examples:
  vfmatch match a.bin b.bin
  vfmatch match pattern.txt host.txt --features none
  vfmatch batch listA listB -o time.tsv --time-limit 10s`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Metrics.File == "" || a.recorder == nil {
				return nil
			}
			return a.recorder.WriteFile(a.cfg.Metrics.File)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.features, "features", "", "feature policy: partition, decay or none")
	pf.StringVar(&a.flags.source, "distance-source", "", "partition distances: bfs or floyd")
	pf.StringVar(&a.flags.mode, "mode", "", "matching problem: auto, isomorphism or subgraph")
	pf.DurationVar(&a.flags.timeLimit, "time-limit", 0, "abort a single search after this long (0 = no limit)")
	pf.BoolVar(&a.flags.noAnchor, "no-anchor-pruning", false, "branch on every graph-1 node at each state")
	pf.BoolVar(&a.flags.sortNodes, "sort-nodes", false, "visit graph-1 nodes by degree frequency")
	pf.BoolVar(&a.flags.connected, "connected-order", false, "visit graph-1 nodes in undirected DFS pre-order")
	pf.BoolVar(&a.flags.labels, "labels", false, "binary files carry node and edge labels")
	pf.StringVar(&a.flags.format, "format", "", "input format: auto, binary or text")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "text or json")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(newMatchCmd(a), newBatchCmd(a), newFeaturesCmd(a), newVersionCmd())
	return root
}

// setup loads the configuration, applies explicitly set flags and builds
// the logger and the metrics recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("features", func() { cfg.Match.Features = a.flags.features })
	set("distance-source", func() { cfg.Match.DistanceSource = a.flags.source })
	set("mode", func() { cfg.Match.Mode = a.flags.mode })
	set("time-limit", func() { cfg.Match.TimeLimit = a.flags.timeLimit })
	set("no-anchor-pruning", func() { cfg.Match.AnchorPruning = !a.flags.noAnchor })
	set("sort-nodes", func() { cfg.Match.SortNodes = a.flags.sortNodes })
	set("connected-order", func() { cfg.Match.ConnectedOrder = a.flags.connected })
	set("labels", func() { cfg.Input.Labels = a.flags.labels })
	set("format", func() { cfg.Input.Format = a.flags.format })
	set("log-level", func() { cfg.Log.Level = a.flags.logLevel })
	set("log-format", func() { cfg.Log.Format = a.flags.logFormat })
	set("metrics-file", func() { cfg.Metrics.File = a.flags.metricsFile })
	if err = cfg.Validate(); err != nil {
		return err
	}

	cfg.Log.Output = cmd.ErrOrStderr()
	if a.log, err = logging.New(cfg.Log); err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.log = a.log.With(slog.String("run_id", a.runID))
	a.recorder = metrics.New(a.runID)
	a.cfg = cfg

	return nil
}
