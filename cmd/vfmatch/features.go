package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vfmatch/features"
)

func newFeaturesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "features A B",
		Short: "Print the structural feature of every node of A and B",
		Long: `Compute the configured feature policy over both graphs and print one
row per node: index, feature in A, feature in B. Features are only defined
when the node counts are equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, g2, err := a.loadPair(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			p, err := a.cfg.Policy()
			if err != nil {
				return err
			}
			v, err := features.Compute(g1, g2, p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "policy: %s\n", p.Name())
			if v == nil || v.F1 == nil {
				fmt.Fprintf(w, "no features (%d vs %d nodes)\n", g1.NodeCount(), g2.NodeCount())
				return nil
			}
			for i := range v.F1 {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, format(v.F1[i]), format(v.F2[i]))
			}
			return nil
		},
	}
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
