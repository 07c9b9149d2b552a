package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vfmatch"
	"github.com/katalvlaran/vfmatch/argio"
	"github.com/katalvlaran/vfmatch/core"
)

func newMatchCmd(a *app) *cobra.Command {
	var showMapping bool
	cmd := &cobra.Command{
		Use:   "match A B",
		Short: "Match graph A against graph B",
		Long: `Search for a mapping of graph A onto graph B and print it.

Exit status is 0 whether or not a mapping exists; "found: false" reports a
negative result. Errors (unreadable input, time limit, interrupt) exit 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, g2, err := a.loadPair(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			run, err := a.match(cmd.Context(), g1, g2)
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), run, showMapping)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMapping, "mapping", true, "print the node mapping when found")
	return cmd
}

// loadPair reads both graphs concurrently.
func (a *app) loadPair(ctx context.Context, pathA, pathB string) (*core.Graph, *core.Graph, error) {
	var g1, g2 *core.Graph
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		g1, err = argio.Load(pathA, a.cfg.LoadOptions()...)
		return err
	})
	eg.Go(func() (err error) {
		g2, err = argio.Load(pathB, a.cfg.LoadOptions()...)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	a.log.Debug("graphs loaded",
		slog.String("a", pathA), slog.Int("a_nodes", g1.NodeCount()), slog.Int("a_edges", g1.EdgeCount()),
		slog.String("b", pathB), slog.Int("b_nodes", g2.NodeCount()), slog.Int("b_edges", g2.EdgeCount()),
	)
	return g1, g2, nil
}

// match runs one attempt with the configured options and records it.
func (a *app) match(ctx context.Context, g1, g2 core.ARG) (*vfmatch.Run, error) {
	sopts, err := a.cfg.StateOptions()
	if err != nil {
		return nil, err
	}
	run, err := vfmatch.Match(ctx, g1, g2,
		vfmatch.WithStateOptions(sopts...),
		vfmatch.WithSearchOptions(a.cfg.SearchOptions(a.log)...),
	)
	if run != nil {
		a.recorder.Observe(run.Mode, run.Result, err)
		if run.Result != nil {
			a.log.Info("match done",
				slog.String("mode", run.Mode.String()),
				slog.Bool("found", run.Result.Found),
				slog.Int64("states", run.Result.Stats.States),
				slog.Int64("explored", run.Result.Stats.Nodes),
				slog.Duration("init", run.InitTime),
				slog.Duration("search", run.Result.Stats.Elapsed),
			)
		}
	}
	return run, err
}

func printRun(w io.Writer, run *vfmatch.Run, mapping bool) {
	res := run.Result
	fmt.Fprintf(w, "mode: %s\n", run.Mode)
	fmt.Fprintf(w, "found: %t\n", res.Found)
	fmt.Fprintf(w, "states: %d\n", res.Stats.States)
	fmt.Fprintf(w, "explored: %d\n", res.Stats.Nodes)
	if !res.Found || !mapping {
		return
	}
	fmt.Fprintf(w, "mapping (%d pairs):\n", res.Size)
	for k := 0; k < res.Size; k++ {
		fmt.Fprintf(w, "  %d -> %d\n", res.Core1[k], res.Core2[k])
	}
}
