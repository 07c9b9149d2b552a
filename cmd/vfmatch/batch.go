package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vfmatch/internal/report"
	"github.com/katalvlaran/vfmatch/search"
)

func newBatchCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "batch LIST_A LIST_B",
		Short: "Match paired graph files listed line by line",
		Long: `Read two files listing graph paths, one per line, and match the i-th
graph of LIST_A against the i-th graph of LIST_B until either list ends.
Blank lines are skipped. One tab-separated row per pair is written:

  nodes edges initialState matchTime numberOfStates numberOfExploredNodes flag

Times are in milliseconds; flag is 1 when a mapping was found. A pair that
hits --time-limit is recorded with flag 0 and the batch continues.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, ferr := os.Create(out)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			return a.batch(cmd.Context(), args[0], args[1], w)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "results file (default stdout)")
	return cmd
}

func (a *app) batch(ctx context.Context, listA, listB string, w io.Writer) error {
	as, err := readList(listA)
	if err != nil {
		return err
	}
	bs, err := readList(listB)
	if err != nil {
		return err
	}
	rw, err := report.NewWriter(w)
	if err != nil {
		return err
	}

	pairs := min(len(as), len(bs))
	for i := 0; i < pairs; i++ {
		a.log.Info("matching", slog.Int("pair", i+1), slog.String("a", as[i]), slog.String("b", bs[i]))
		g1, g2, err := a.loadPair(ctx, as[i], bs[i])
		if err != nil {
			return fmt.Errorf("pair %d: %w", i+1, err)
		}
		run, err := a.match(ctx, g1, g2)
		switch {
		case errors.Is(err, search.ErrTimeLimit):
			a.log.Warn("time limit reached", slog.Int("pair", i+1))
		case err != nil:
			return fmt.Errorf("pair %d: %w", i+1, err)
		}

		row := report.Row{
			Nodes:    g1.NodeCount(),
			Edges:    g1.EdgeCount(),
			Init:     run.InitTime,
			Match:    run.Result.Stats.Elapsed,
			States:   run.Result.Stats.States,
			Explored: run.Result.Stats.Nodes,
			Found:    run.Result.Found,
		}
		if err = rw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, sc.Err()
}
